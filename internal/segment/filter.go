package segment

// FilterSmallComponents clears, in place, every mask pixel whose component
// has fewer than minArea pixels and returns mask. It never sets a bit.
func FilterSmallComponents(mask []bool, lab *Labeling, minArea int) []bool {
	for i, on := range mask {
		if !on {
			continue
		}
		if lab.SizeOf(lab.Labels[i]) < minArea {
			mask[i] = false
		}
	}
	return mask
}
