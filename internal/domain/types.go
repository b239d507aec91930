package domain

// Levels is the size of the level domain [0, Levels). A threshold equal to
// Levels means the condition never triggers inside the domain.
const Levels = 100

// Items is how many test items a tester starts each trial with.
const Items = 2

// Case is the outcome of one trial: the hidden threshold and the number of
// probes the strategy spent finding it.
type Case struct {
	Threshold int `json:"threshold"`
	Probes    int `json:"probes"`
}

// Result is the worst case of one evaluated strategy.
type Result struct {
	Strategy string `json:"strategy"`
	Kind     Kind   `json:"kind"`
	Worst    Case   `json:"worst"`
	// Bound is the expected worst-case probe count, when one is known.
	Bound int `json:"bound,omitempty"`
}
