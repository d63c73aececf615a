package domain

// Stack is one kind of item held in bulk: an item code and how many of it.
type Stack struct {
	ItemCode int `json:"item_code"`
	Count    int `json:"count"`
}

// Stacks is an ordered collection of stacks. An item code appears at most
// once; a stack never holds a count below one. "No stack" and "zero-count
// stack" are the same state, so all mutation must go through Add and
// Remove rather than direct slice edits.
type Stacks []Stack

// Add merges amount into the stack for code, appending a new stack if none
// exists. It returns the resulting collection without mutating the receiver.
func (s Stacks) Add(code, amount int) (Stacks, error) {
	if amount <= 0 {
		return nil, ErrInvalidQuantity
	}

	out := make(Stacks, len(s))
	copy(out, s)

	for i := range out {
		if out[i].ItemCode == code {
			out[i].Count += amount
			return out, nil
		}
	}

	return append(out, Stack{ItemCode: code, Count: amount}), nil
}

// Remove takes amount away from the stack for code, deleting the stack
// entry when it reaches zero. It returns the resulting collection without
// mutating the receiver.
func (s Stacks) Remove(code, amount int) (Stacks, error) {
	if amount <= 0 {
		return nil, ErrInvalidQuantity
	}

	out := make(Stacks, len(s))
	copy(out, s)

	for i := range out {
		if out[i].ItemCode != code {
			continue
		}
		if out[i].Count < amount {
			return nil, ErrInsufficientStock
		}
		out[i].Count -= amount
		if out[i].Count == 0 {
			return append(out[:i], out[i+1:]...), nil
		}
		return out, nil
	}

	return nil, ErrStackNotFound
}

// Has reports whether a stack for code exists with at least amount items.
func (s Stacks) Has(code, amount int) bool {
	for _, stack := range s {
		if stack.ItemCode == code {
			return stack.Count >= amount
		}
	}

	return false
}
