package server

import (
	"bytes"
	"testing"

	"github.com/bastiangx/wordtree/pkg/config"
	"github.com/bastiangx/wordtree/pkg/dictionary"
	"github.com/bastiangx/wordtree/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func newCompleter(t *testing.T) *suggest.Completer {
	t.Helper()
	c, err := suggest.NewCompleter(suggest.ApproachTST)
	require.NoError(t, err)
	c.Load([]dictionary.WordFrequency{
		{Word: "cut", Frequency: 10},
		{Word: "app", Frequency: 20},
		{Word: "cute", Frequency: 50},
		{Word: "farm", Frequency: 40},
		{Word: "cup", Frequency: 30},
	})
	return c
}

// run feeds messages through a server and returns a decoder over its output.
func run(t *testing.T, cfg *config.Config, messages ...any) *msgpack.Decoder {
	t.Helper()
	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, m := range messages {
		require.NoError(t, enc.Encode(m))
	}

	srv := NewServerWithIO(newCompleter(t), cfg, &in, &out)
	require.NoError(t, srv.Start())
	return msgpack.NewDecoder(&out)
}

func TestComplete(t *testing.T) {
	dec := run(t, nil, Request{ID: "r1", Op: OpComplete, Word: "cu"})

	var resp CompletionResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "r1", resp.ID)
	assert.Equal(t, 3, resp.Count)
	assert.Equal(t, []Suggestion{
		{Word: "cute", Frequency: 50},
		{Word: "cup", Frequency: 30},
		{Word: "cut", Frequency: 10},
	}, resp.Suggestions)
}

func TestCompleteValidation(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MinPrefix = 2
	cfg.Server.MaxPrefix = 4

	dec := run(t, cfg,
		Request{ID: "empty", Op: OpComplete},
		Request{ID: "short", Op: OpComplete, Word: "c"},
		Request{ID: "long", Op: OpComplete, Word: "cutest"},
		Request{ID: "filtered", Op: OpComplete, Word: "12"},
	)

	for _, id := range []string{"empty", "short", "long"} {
		var resp ErrorResponse
		require.NoError(t, dec.Decode(&resp))
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, 400, resp.Code)
	}

	var filtered CompletionResponse
	require.NoError(t, dec.Decode(&filtered))
	assert.Equal(t, "filtered", filtered.ID)
	assert.Zero(t, filtered.Count)
}

func TestMutations(t *testing.T) {
	dec := run(t, nil,
		Request{ID: "1", Op: OpAdd, Word: "cuter", Frequency: 70},
		Request{ID: "2", Op: OpAdd, Word: "cuter", Frequency: 1},
		Request{ID: "3", Op: OpSearch, Word: "cuter"},
		Request{ID: "4", Op: OpDelete, Word: "cut"},
		Request{ID: "5", Op: OpSearch, Word: "cut"},
		Request{ID: "6", Op: OpDelete, Word: "cut"},
		Request{ID: "7", Op: OpAdd, Word: "neg", Frequency: -1},
	)

	var added ResultResponse
	require.NoError(t, dec.Decode(&added))
	assert.Equal(t, "added", added.Status)

	var dup ErrorResponse
	require.NoError(t, dec.Decode(&dup))
	assert.Equal(t, 409, dup.Code)

	var found ResultResponse
	require.NoError(t, dec.Decode(&found))
	assert.Equal(t, "found", found.Status)
	assert.Equal(t, 70, found.Frequency)

	var deleted ResultResponse
	require.NoError(t, dec.Decode(&deleted))
	assert.Equal(t, "deleted", deleted.Status)

	for _, id := range []string{"5", "6"} {
		var missing ErrorResponse
		require.NoError(t, dec.Decode(&missing))
		assert.Equal(t, id, missing.ID)
		assert.Equal(t, 404, missing.Code)
	}

	var neg ErrorResponse
	require.NoError(t, dec.Decode(&neg))
	assert.Equal(t, 400, neg.Code)
}

func TestStatsAndHealth(t *testing.T) {
	dec := run(t, nil,
		Request{ID: "s", Op: OpStats},
		Request{ID: "h", Op: OpHealth},
		Request{ID: "u", Op: "explode"},
		"not a request",
	)

	var stats StatsResponse
	require.NoError(t, dec.Decode(&stats))
	assert.Equal(t, "tst", stats.Approach)
	assert.Equal(t, 5, stats.Stats["totalWords"])

	var health ResultResponse
	require.NoError(t, dec.Decode(&health))
	assert.Equal(t, "ok", health.Status)

	var unknown ErrorResponse
	require.NoError(t, dec.Decode(&unknown))
	assert.Equal(t, "u", unknown.ID)
	assert.Equal(t, 400, unknown.Code)

	var invalid ErrorResponse
	require.NoError(t, dec.Decode(&invalid))
	assert.Equal(t, 400, invalid.Code)
}
