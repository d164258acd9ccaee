package translator

// jaroWinkler scores the similarity of a and b in [0,1], using the
// standard Jaro distance with a Winkler boost for shared prefixes (up
// to 4 runes). No third-party similarity library appears anywhere in
// the retrieval pack (see DESIGN.md), so this is a small, self-contained
// stdlib implementation rather than a hand-rolled substitute for one.
func jaroWinkler(a, b string) float64 {
	ar, br := []rune(a), []rune(b)
	jaro := jaroDistance(ar, br)
	if jaro == 0 {
		return 0
	}
	prefix := 0
	for prefix < len(ar) && prefix < len(br) && prefix < 4 && ar[prefix] == br[prefix] {
		prefix++
	}
	const scalingFactor = 0.1
	return jaro + float64(prefix)*scalingFactor*(1-jaro)
}

func jaroDistance(a, b []rune) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	matchDist := max(len(a), len(b))/2 - 1
	if matchDist < 0 {
		matchDist = 0
	}
	aMatched := make([]bool, len(a))
	bMatched := make([]bool, len(b))
	matches := 0
	for i := range a {
		lo := i - matchDist
		if lo < 0 {
			lo = 0
		}
		hi := i + matchDist + 1
		if hi > len(b) {
			hi = len(b)
		}
		for j := lo; j < hi; j++ {
			if bMatched[j] || a[i] != b[j] {
				continue
			}
			aMatched[i] = true
			bMatched[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}
	transpositions := 0
	k := 0
	for i := range a {
		if !aMatched[i] {
			continue
		}
		for !bMatched[k] {
			k++
		}
		if a[i] != b[k] {
			transpositions++
		}
		k++
	}
	m := float64(matches)
	return (m/float64(len(a)) + m/float64(len(b)) + (m-float64(transpositions)/2)/m) / 3
}
