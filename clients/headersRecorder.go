package clients

import (
	"encoding/json"
	"net/http"
	"net/textproto"
	"strconv"
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

var (
	rateLimitLimitHeader     = textproto.CanonicalMIMEHeaderKey("X-RateLimit-Limit")
	rateLimitRemainingHeader = textproto.CanonicalMIMEHeaderKey("X-RateLimit-Remaining")
	rateLimitResetHeader     = textproto.CanonicalMIMEHeaderKey("X-RateLimit-Reset")
	enableTraceHeader        = textproto.CanonicalMIMEHeaderKey("X-Trace-Enable")
	traceHeader              = textproto.CanonicalMIMEHeaderKey("X-Call-Trace")
	requestIDHeader          = textproto.CanonicalMIMEHeaderKey("X-Request-Id")
)

// NewAccountHeadersRecorder creates a recorder that propagates a request id to
// every provisioning call and accumulates the API's rate-limit headers. When
// parent carries a request id and trace flag they are inherited, so calls made
// on behalf of an incoming request join its trace.
func NewAccountHeadersRecorder(parent *http.Request) *AccountHeadersRecorder {
	var parentHeaders http.Header
	if parent != nil {
		parentHeaders = parent.Header
	}

	enableTrace, _ := strconv.ParseBool(parentHeaders.Get(enableTraceHeader))
	requestID := parentHeaders.Get(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewV4().String()
	}

	return &AccountHeadersRecorder{
		parentLogFields: requestLogFields(parent),
		rateLimit:       http.Header{},
		enableTrace:     enableTrace,
		callTrace:       []*CallTree{},
		requestID:       requestID,
	}
}

// AccountHeadersRecorder implements RequestRecorder.
type AccountHeadersRecorder struct {
	mu sync.RWMutex

	parentLogFields logrus.Fields
	rateLimit       http.Header
	enableTrace     bool
	callTrace       []*CallTree
	requestID       string
}

func (r *AccountHeadersRecorder) BeforeDial(req *http.Request) {
	if r.enableTrace {
		req.Header.Set(enableTraceHeader, "true")
	}
	req.Header.Set(requestIDHeader, r.requestID)
}

// Record keeps the most recent rate-limit headers seen on a response and, when
// tracing is enabled, appends the call to the trace.
func (r *AccountHeadersRecorder) Record(req *http.Request, res *http.Response, responseTime time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, header := range []string{rateLimitLimitHeader, rateLimitRemainingHeader, rateLimitResetHeader} {
		if value := res.Header.Get(header); value != "" {
			r.rateLimit.Set(header, value)
		}
	}

	if r.enableTrace {
		r.recordChildCallTree(req, res, responseTime)
	}
}

// RateLimitHeaders returns a copy of the latest rate-limit headers reported by
// the API, empty until the first recorded response.
func (r *AccountHeadersRecorder) RateLimitHeaders() http.Header {
	r.mu.RLock()
	defer r.mu.RUnlock()

	headers := http.Header{}
	for k, vs := range r.rateLimit {
		headers[k] = append([]string(nil), vs...)
	}
	return headers
}

// AddResponseHeaders writes the accumulated rate-limit state and call trace to
// an outgoing response.
func (r *AccountHeadersRecorder) AddResponseHeaders(out http.Header) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for k, vs := range r.rateLimit {
		out[k] = append(out[k], vs...)
	}

	if r.enableTrace {
		trace, err := json.Marshal(r.callTrace)
		if err != nil {
			r.log("call_trace_marshal_error", nil, err).
				Error("Failed to marshal call trace")
			return
		}
		out.Set(traceHeader, string(trace))
	}
}

func (r *AccountHeadersRecorder) recordChildCallTree(req *http.Request, res *http.Response, responseTime time.Duration) {
	resh := res.Header.Get(traceHeader)
	var children []*CallTree
	if err := json.Unmarshal([]byte(resh), &children); err != nil && resh != "" {
		r.log("call_trace_child_error", req, err).
			Error("Failed to unmarshal child call trace")
		children = nil
	}

	r.callTrace = append(r.callTrace, &CallTree{
		Call:     req.Method + " " + req.URL.String(),
		Time:     responseTime.Nanoseconds() / int64(time.Millisecond),
		Status:   res.StatusCode,
		Children: children,
	})
}

func (r *AccountHeadersRecorder) log(code string, req *http.Request, err error) *logrus.Entry {
	logger := logrus.WithFields(logrus.Fields{
		"code":       code,
		"parent_req": r.parentLogFields,
	})
	if req != nil {
		logger = logger.WithField("child_req", requestLogFields(req))
	}
	if err != nil {
		logger = logger.WithError(err)
	}
	return logger
}

type CallTree struct {
	Call     string      `json:"call"`
	Status   int         `json:"status"`
	Time     int64       `json:"time"`
	Children []*CallTree `json:"children,omitempty"`
}

func requestLogFields(req *http.Request) logrus.Fields {
	if req == nil {
		return logrus.Fields{}
	}

	return logrus.Fields{
		"host":   req.URL.Host,
		"path":   req.URL.Path,
		"query":  req.URL.RawQuery,
		"method": req.Method,
	}
}
