/*
Package server implements msgpack IPC for dictionary services.

Clients write msgpack encoded requests to stdin and read one msgpack response
per request from stdout. Every request carries an ID that is echoed back and an
op naming the operation:

	{"id": "r1", "op": "complete", "w": "cu"}
	{"id": "r2", "op": "search", "w": "farm"}
	{"id": "r3", "op": "add", "w": "cute", "f": 50}
	{"id": "r4", "op": "delete", "w": "cut"}
	{"id": "r5", "op": "stats"}
	{"id": "r6", "op": "health"}

Completions come back ranked by frequency, at most three of them:

	{"id": "r1", "s": [{"w": "cute", "f": 50}, {"w": "cup", "f": 30}], "c": 2, "t": 12}

Lookups and mutations answer with a ResultResponse; failures with an
ErrorResponse whose code follows HTTP conventions: 400 for bad input, 404 for
missing words, 409 for duplicates.
*/
package server

// Operations accepted in Request.Op.
const (
	OpComplete = "complete"
	OpSearch   = "search"
	OpAdd      = "add"
	OpDelete   = "delete"
	OpStats    = "stats"
	OpHealth   = "health"
)

// Request is the single message type clients send.
type Request struct {
	ID        string `msgpack:"id"`
	Op        string `msgpack:"op"`
	Word      string `msgpack:"w,omitempty"`
	Frequency int    `msgpack:"f,omitempty"`
}

// Suggestion is one completion.
type Suggestion struct {
	Word      string `msgpack:"w"`
	Frequency int    `msgpack:"f"`
}

// CompletionResponse answers OpComplete. TimeTaken is in microseconds.
type CompletionResponse struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
}

// ResultResponse answers OpSearch, OpAdd, OpDelete and OpHealth.
type ResultResponse struct {
	ID        string `msgpack:"id"`
	Status    string `msgpack:"status"`
	Word      string `msgpack:"w,omitempty"`
	Frequency int    `msgpack:"f"`
}

// StatsResponse answers OpStats.
type StatsResponse struct {
	ID       string         `msgpack:"id"`
	Approach string         `msgpack:"approach"`
	Stats    map[string]int `msgpack:"stats"`
}

// ErrorResponse reports a failed request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
