package mocks

import (
	"encoding/json"
	"sync"

	"github.com/cumulusmedia/go-provisioning/clients"
)

// Call is one request descriptor recorded by the fake Caller.
type Call struct {
	Method  string
	URI     []interface{}
	Params  clients.Params
	Options *clients.CallOptions
}

// NewCaller creates a recording fake of clients.Caller. Stubbed results are
// returned in FIFO order through a JSON round trip, so fixtures behave like
// real response payloads.
func NewCaller() *Caller {
	return &Caller{}
}

type Caller struct {
	sync.Mutex

	calls   []Call
	results [][]byte
	err     error
}

// StubResult queues a payload to be decoded into the result of a later call.
func (c *Caller) StubResult(data interface{}) *Caller {
	raw, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	c.Lock()
	c.results = append(c.results, raw)
	c.Unlock()
	return c
}

// StubError makes every subsequent call fail with err.
func (c *Caller) StubError(err error) *Caller {
	c.Lock()
	c.err = err
	c.Unlock()
	return c
}

func (c *Caller) Call(method string, uri []interface{}, params clients.Params, result interface{}, opts *clients.CallOptions) error {
	c.Lock()
	defer c.Unlock()

	c.calls = append(c.calls, Call{Method: method, URI: uri, Params: params, Options: opts})
	if c.err != nil {
		return c.err
	}
	if result == nil || len(c.results) == 0 {
		return nil
	}

	raw := c.results[0]
	c.results = c.results[1:]
	return json.Unmarshal(raw, result)
}

// Calls returns a copy of every recorded descriptor.
func (c *Caller) Calls() []Call {
	c.Lock()
	defer c.Unlock()
	return append([]Call(nil), c.calls...)
}

// LastCall returns the most recent descriptor; it panics when nothing was
// called.
func (c *Caller) LastCall() Call {
	c.Lock()
	defer c.Unlock()
	if len(c.calls) == 0 {
		panic("no calls recorded")
	}
	return c.calls[len(c.calls)-1]
}
