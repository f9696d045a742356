/*
Package server implements msgpack IPC for stroke translation.

The server reads a stream of msgpack encoded requests from stdin and writes
one msgpack encoded response per request to stdout. Logs never go to
stdout.

# IPC

Every request carries an ID that is echoed in its response. A request
without an action is a lookup:

	{"id": "req_001", "s": ["HEL", "O", "*", "TK", "TP", "R", "-PBT"]}

The server answers with the joined text, its segments and any residue:

	{"id": "req_001", "w": "hello * different", "g": [...], "r": [], "t": 95}

Other actions:

	{"id": "p_001", "action": "pattern", "s": ["TK", "TP", "R", "-PBT"]}
	{"id": "h_001", "action": "health"}
	{"id": "r_001", "action": "reload"}

"pattern" returns the anchored regexp the strokes compile to as one word,
"health" reports the loaded theory and word count, and "reload" reads the
word list file again. Failures are answered with a LookupError.

Before the first request the server writes a StatusResponse with status
"ready".
*/
package server

// Actions understood by the server.
const (
	ActionLookup  = "lookup"
	ActionPattern = "pattern"
	ActionHealth  = "health"
	ActionReload  = "reload"
)

// Error codes sent in LookupError.
const (
	CodeBadRequest = 400
	CodeTooLarge   = 413
	CodeInternal   = 500
)

// Request is any client message.
type Request struct {
	ID      string   `msgpack:"id"`
	Action  string   `msgpack:"action,omitempty"`
	Strokes []string `msgpack:"s,omitempty"`
}

// Segment is one translated piece of a lookup.
type Segment struct {
	Kind    string   `msgpack:"k"`
	Strokes []string `msgpack:"s"`
	Text    string   `msgpack:"w"`
	Rank    int      `msgpack:"r,omitempty"`
}

// LookupResponse answers a lookup. TimeTaken is in microseconds.
type LookupResponse struct {
	ID        string    `msgpack:"id"`
	Text      string    `msgpack:"w"`
	Segments  []Segment `msgpack:"g"`
	Residue   []string  `msgpack:"r"`
	TimeTaken int64     `msgpack:"t"`
}

// PatternResponse answers a pattern request.
type PatternResponse struct {
	ID      string `msgpack:"id"`
	Pattern string `msgpack:"p"`
}

// StatusResponse answers health and reload requests and signals readiness.
type StatusResponse struct {
	ID      string `msgpack:"id,omitempty"`
	Status  string `msgpack:"status"`
	Theory  string `msgpack:"theory,omitempty"`
	Version int    `msgpack:"version,omitempty"`
	Words   int    `msgpack:"words,omitempty"`
}

// LookupError holds basic error information for failed requests
type LookupError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
