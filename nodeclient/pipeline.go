package nodeclient

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

// operation describes one repository call to the pipeline: which endpoint
// it targets, whether a successful response must invalidate the cache,
// and the gates that guard it.
type operation struct {
	endpoint Endpoint
	mutating bool
	gates    []gate
}

// run executes an operation inside the scoped request context: gates
// first, then the cache (for cacheable reads), then the HTTP call. Every
// error leaves normalized to a *WalletError; invalidation of the cache on
// mutating calls happens before the response is handed back.
func (c *Client) run(ctx context.Context, op operation, key string, perform func(context.Context) ([]byte, error)) ([]byte, error) {
	for _, g := range op.gates {
		if err := g.check(ctx, c); err != nil {
			if c.metrics != nil {
				c.metrics.GateRejections.WithLabelValues(g.name()).Inc()
			}
			c.logger.Debug("operation rejected by gate",
				"endpoint", string(op.endpoint), "gate", g.name())
			return nil, normalizeError(err)
		}
	}

	started := time.Now()
	var raw []byte
	var err error
	if !op.mutating && IsCacheable(op.endpoint) {
		raw, err = c.cache.GetOrFetch(key, func() ([]byte, error) {
			return perform(ctx)
		})
	} else {
		raw, err = perform(ctx)
	}
	c.observe(op.endpoint, started, err)
	if err != nil {
		return nil, normalizeError(err)
	}

	if op.mutating {
		if invErr := c.cache.InvalidateAll(); invErr != nil {
			c.logger.Error("cache invalidation failed",
				"endpoint", string(op.endpoint), "error", invErr)
		} else if c.metrics != nil {
			c.metrics.CacheInvalidations.Inc()
		}
	}
	return raw, nil
}

func (c *Client) observe(endpoint Endpoint, started time.Time, err error) {
	if c.metrics == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = string(KindOf(err))
	}
	c.metrics.RequestsTotal.WithLabelValues(string(endpoint), outcome).Inc()
	c.metrics.RequestDuration.WithLabelValues(string(endpoint)).Observe(time.Since(started).Seconds())
}

// get performs a GET operation and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, op operation, out any) error {
	raw, err := c.run(ctx, op, string(op.endpoint), func(ctx context.Context) ([]byte, error) {
		return c.transport.Get(ctx, op.endpoint)
	})
	if err != nil {
		return err
	}
	return decodeResponse(raw, out)
}

// post validates the request record, performs a POST operation with the
// canonical JSON body and decodes the response into out.
func (c *Client) post(ctx context.Context, op operation, body, out any) error {
	var payload json.RawMessage
	key := string(op.endpoint)
	if body != nil {
		if err := c.validateRequest(body); err != nil {
			return err
		}
		encoded, err := json.Marshal(body)
		if err != nil {
			return wrapError(KindRequestFailed, "encoding request body", err)
		}
		payload = encoded
		key += "#" + string(encoded)
	}

	raw, err := c.run(ctx, op, key, func(ctx context.Context) ([]byte, error) {
		if payload == nil {
			return c.transport.PostJSON(ctx, op.endpoint, nil)
		}
		return c.transport.PostJSON(ctx, op.endpoint, payload)
	})
	if err != nil {
		return err
	}
	return decodeResponse(raw, out)
}

// postMultipart uploads a single file part through the pipeline.
func (c *Client) postMultipart(ctx context.Context, op operation, file MultipartFile, out any) error {
	raw, err := c.run(ctx, op, string(op.endpoint), func(ctx context.Context) ([]byte, error) {
		return c.transport.PostMultipart(ctx, op.endpoint, file)
	})
	if err != nil {
		return err
	}
	return decodeResponse(raw, out)
}

func decodeResponse(raw []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return wrapError(KindSchemaValidation, "decoding node response", err)
	}
	return nil
}

// validateRequest runs struct validation on a request record.
func (c *Client) validateRequest(body any) error {
	err := c.validate.Struct(body)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return wrapError(KindSchemaValidation, fieldErrs[0].Error(), err)
	}
	return wrapError(KindSchemaValidation, "request validation failed", err)
}

// normalizeError routes transport and validation failures through the
// error taxonomy. Wallet errors pass through; context timeouts map to
// Timeout; anything else is categorized as Unknown.
func normalizeError(err error) error {
	if err == nil {
		return nil
	}
	var we *WalletError
	if errors.As(err, &we) {
		return we
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return wrapError(KindTimeout, "request timed out", err)
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		msg := "request validation failed"
		if len(fieldErrs) > 0 {
			msg = fieldErrs[0].Error()
		}
		return wrapError(KindSchemaValidation, msg, err)
	}
	return wrapError(KindUnknown, fallbackUserMessage, err)
}
