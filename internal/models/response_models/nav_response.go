package response_models

// NavDecision is the gate's answer for one evaluation: the derived state,
// whether the current location is permitted, and where to go if it is not.
type NavDecision struct {
	State     string `json:"state"`
	Permitted bool   `json:"permitted"`
	Redirect  string `json:"redirect,omitempty"`
}
