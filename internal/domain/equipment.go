package domain

// Equipment is the ordered list of item codes currently worn by a
// character. Each code appears at most once.
type Equipment []int

func (e Equipment) Contains(code int) bool {
	for _, c := range e {
		if c == code {
			return true
		}
	}

	return false
}
