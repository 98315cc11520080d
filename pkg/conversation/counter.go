package conversation

// interactionCounter counts completed Q&A round-trips since the last
// quiz. Reset when a quiz is triggered or when quiz generation fails,
// so the user gets a full new window of turns.
type interactionCounter struct {
	n int
}

func (c *interactionCounter) Increment() int {
	c.n++
	return c.n
}

func (c *interactionCounter) Reset() { c.n = 0 }

func (c *interactionCounter) Count() int { return c.n }
