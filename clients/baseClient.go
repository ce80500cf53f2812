package clients

import (
	goContext "context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"gopkg.in/h2non/gentleman.v1"
	"gopkg.in/h2non/gentleman.v1/context"
	"gopkg.in/h2non/gentleman.v1/plugin"
	"gopkg.in/h2non/gentleman.v1/plugins/auth"
	"gopkg.in/h2non/gentleman.v1/plugins/headers"
	"gopkg.in/h2non/gentleman.v1/plugins/timeout"
	"gopkg.in/h2non/gentleman.v1/plugins/transport"
)

const (
	defaultEndpoint = "https://api.cumulusmedia.io/v1/provisioning"
	defaultTimeout  = 5 * time.Second

	startTimeKey = "startTime"
)

// RequestRecorder observes every request made through a client built by this
// package. Implementations must be safe for concurrent use.
type RequestRecorder interface {
	BeforeDial(req *http.Request)
	Record(req *http.Request, res *http.Response, responseTime time.Duration)
}

// Config holds the account coordinates and transport settings shared by all
// provisioning clients. Key/Secret take precedence over AuthToken, which takes
// precedence over AuthFunc.
type Config struct {
	Account   string
	Key       string
	Secret    string
	AuthToken string
	AuthFunc  func() string
	Endpoint  string
	UserAgent string
	Recorder  RequestRecorder
	Context   goContext.Context
	Timeout   time.Duration
	Transport http.RoundTripper
}

// CreateAccountClient builds an HTTP client rooted at the account's
// provisioning resource.
func CreateAccountClient(config *Config) *gentleman.Client {
	if config == nil {
		panic("config cannot be <nil>")
	}

	reqTimeout := config.Timeout
	if reqTimeout <= 0 {
		reqTimeout = defaultTimeout
	}

	cl := gentleman.New().
		Use(timeout.Request(reqTimeout)).
		Use(headers.Set("User-Agent", config.UserAgent)).
		Use(responseErrors())
	if config.Recorder != nil {
		cl = cl.Use(requestRecorder(config.Recorder))
	}
	if config.Context != nil && config.Context != goContext.Background() {
		cl = cl.Use(contextBinder(config.Context))
	}

	if config.Endpoint != "" {
		cl = cl.URL(config.Endpoint)
	} else {
		cl = cl.URL(defaultEndpoint)
	}
	cl = cl.Path("/accounts/" + config.Account)

	switch {
	case config.Key != "":
		cl = cl.Use(auth.Basic(config.Key, config.Secret))
	case config.AuthToken != "":
		cl = cl.Use(auth.Bearer(config.AuthToken))
	case config.AuthFunc != nil:
		cl = cl.UseRequest(func(ctx *context.Context, h context.Handler) {
			ctx.Request.Header.Set("Authorization", "Bearer "+config.AuthFunc())
			h.Next(ctx)
		})
	}

	if config.Transport != nil {
		cl = cl.Use(transport.Set(config.Transport))
	}

	return cl
}

func responseErrors() plugin.Plugin {
	return plugin.NewResponsePlugin(func(c *context.Context, h context.Handler) {
		if 200 <= c.Response.StatusCode && c.Response.StatusCode < 400 {
			h.Next(c)
			return
		}

		descr := ErrorDescriptor{Code: "undefined"}
		if buf, err := io.ReadAll(c.Response.Body); err == nil {
			var payload errorResponse
			if err := json.Unmarshal(buf, &payload); err != nil || payload.Error.Message == "" {
				descr.Message = string(buf)
			} else {
				descr = payload.Error
			}
		}

		h.Error(c, ResponseError{
			Response:   c.Response,
			StatusCode: c.Response.StatusCode,
			Code:       descr.Code,
			Message:    descr.Message,
		})
	})
}

func contextBinder(ctx goContext.Context) plugin.Plugin {
	return plugin.NewRequestPlugin(func(c *context.Context, h context.Handler) {
		newCtx := ctx
		if original := c.Request.Context(); original != goContext.Background() {
			newCtx = linkedContext(original, newCtx)
		}
		c.Request = c.Request.WithContext(newCtx)
		h.Next(c)
	})
}

func linkedContext(ctx1, ctx2 goContext.Context) goContext.Context {
	linked, cancel := goContext.WithCancel(goContext.Background())
	go func() {
		defer cancel()
		select {
		case <-ctx1.Done():
		case <-ctx2.Done():
		}
	}()
	return linked
}

func requestRecorder(recorder RequestRecorder) plugin.Plugin {
	p := plugin.New()
	p.SetHandlers(plugin.Handlers{
		"before dial": func(c *context.Context, h context.Handler) {
			recorder.BeforeDial(c.Request)
			c.Set(startTimeKey, time.Now())
			h.Next(c)
		},
		"response": func(c *context.Context, h context.Handler) {
			recordResponse(recorder, c)
			h.Next(c)
		},
		"error": func(c *context.Context, h context.Handler) {
			// Responses with status >= 400 reach this handler as errors via
			// the responseErrors plugin, so record them here too.
			if _, ok := c.Error.(ResponseError); ok && c.Response != nil {
				recordResponse(recorder, c)
			}
			h.Next(c)
		},
	})
	return p
}

func recordResponse(recorder RequestRecorder, c *context.Context) {
	if startTime, ok := c.GetOk(startTimeKey); ok {
		recorder.Record(c.Request, c.Response, time.Since(startTime.(time.Time)))
	}
}
