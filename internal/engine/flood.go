package engine

// explore reveals the region around a zero-count origin using an explicit
// stack. Explored cells are skipped, so every coordinate is expanded at
// most once.
//
// Flagged cells swept by the fill lose their flag and also pass the fill on
// to their neighbours, even though a direct Reveal on a flag is blocked.
func (e *Engine) explore(masked Field, origin Coord) Field {
	stack := []Coord{origin}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		prev := masked.At(current)
		if prev == Explored {
			continue
		}

		t := e.layout.At(current)
		if t.IsNumber() {
			masked.set(current, RevealedFor(int(t)))
		} else {
			masked.set(current, Explored)
		}

		if t == 0 || prev == Flagged {
			stack = append(stack, Neighbours(current)...)
		}
	}

	return masked
}
