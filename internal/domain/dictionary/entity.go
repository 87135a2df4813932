package dictionary

// Definition is a canonical legal-term entry from the dictionary database.
type Definition struct {
	Term    string `json:"term"`
	Meaning string `json:"meaning"`
	Source  string `json:"source,omitempty"`
}
