// Package beefreeapi provides a beefree.Client implementation backed by the
// Beefree authorization and content services.
package beefreeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"campaigner/pkg/beefree"
	"campaigner/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

const (
	DefaultAuthURL       = "https://auth.getbee.io/apiauth"
	DefaultConversionURL = "https://api.getbee.io/v1/conversion/html-to-json"

	// MaxResponseBytes bounds a vendor response body.
	MaxResponseBytes = 8 << 20
)

var (
	// ErrNoPage is returned when the conversion response carries no page document.
	ErrNoPage = errors.New("conversion response has no page")
	// ErrResponseTooLarge is returned when a response body exceeds MaxResponseBytes.
	ErrResponseTooLarge = errors.New("response body too large")
)

// Options holds vendor endpoints and credentials. Empty URLs fall back to the
// public endpoints.
type Options struct {
	AuthURL       string
	ConversionURL string
	ClientID      string
	ClientSecret  string
	APIKey        string
}

// Client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	opts       Options
}

// Authenticate exchanges client credentials for an editor token.
func (c *Client) Authenticate(ctx context.Context, uid string) (beefree.Token, error) {
	if c.opts.ClientID == "" || c.opts.ClientSecret == "" {
		return beefree.Token{}, serrors.With(serrors.ErrConfigurationMissing, "editor credentials not configured")
	}
	if uid == "" {
		uid = beefree.DefaultUsername
	}

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("grant_type", func(e *jx.Encoder) { e.Str("password") })
		e.Field("client_id", func(e *jx.Encoder) { e.Str(c.opts.ClientID) })
		e.Field("client_secret", func(e *jx.Encoder) { e.Str(c.opts.ClientSecret) })
		e.Field("username", func(e *jx.Encoder) { e.Str(uid) })
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.AuthURL, bytes.NewReader(e.Bytes()))
	if err != nil {
		return beefree.Token{}, errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")

	b, status, err := c.do(req)
	if err != nil {
		return beefree.Token{}, err
	}
	if status < 200 || status >= 300 {
		return beefree.Token{}, errors.Errorf("editor authentication failed: status %d: %s", status, b)
	}

	token, err := ParseToken(b)
	if err != nil {
		return beefree.Token{}, errors.Wrap(err, "parse token")
	}

	return token, nil
}

// ParseToken reads the access token and its lifetime from a token document
// and keeps the document itself for pass-through. expires_in may be a number
// or a numeric string; a missing value leaves ExpiresIn at zero.
func ParseToken(b []byte) (beefree.Token, error) {
	token := beefree.Token{Raw: json.RawMessage(bytes.Clone(b))}
	err := jx.DecodeBytes(b).ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "access_token":
			s, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "access_token")
			}
			token.AccessToken = s
		case "expires_in":
			secs, err := decodeSeconds(d)
			if err != nil {
				return errors.Wrap(err, "expires_in")
			}
			token.ExpiresIn = time.Duration(secs * float64(time.Second))
		default:
			return d.Skip()
		}

		return nil
	})
	if err != nil {
		return beefree.Token{}, err
	}
	if token.AccessToken == "" {
		return beefree.Token{}, errors.New("token has no access_token")
	}

	return token, nil
}

func decodeSeconds(d *jx.Decoder) (float64, error) {
	switch d.Next() {
	case jx.Number:
		return d.Float64()
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return 0, err
		}

		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	case jx.Null:
		return 0, d.Null()
	default:
		return 0, errors.Errorf("unexpected type %s", d.Next())
	}
}

// ConvertHTML posts the HTML to the conversion service and returns
// {"page": ...}.
func (c *Client) ConvertHTML(ctx context.Context, html string) (json.RawMessage, error) {
	if c.opts.APIKey == "" {
		return nil, serrors.With(serrors.ErrConfigurationMissing, "editor api key not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.ConversionURL, strings.NewReader(html))
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)
	req.Header.Set("Content-Type", "text/html")
	req.Header.Set("Accept", "application/json")

	b, status, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, errors.Errorf("conversion failed: status %d: %s", status, b)
	}

	var page jx.Raw
	err = jx.DecodeBytes(b).ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "page" || d.Next() == jx.Null {
			return d.Skip()
		}
		raw, err := d.Raw()
		if err != nil {
			return err
		}
		page = bytes.Clone(raw)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "decode conversion response")
	}
	if len(page) == 0 {
		return nil, ErrNoPage
	}

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("page", func(e *jx.Encoder) { e.Raw(page) })
	})

	return json.RawMessage(e.Bytes()), nil
}

// do sends req and returns the trimmed body and status code. 429 responses
// are reported as serrors.ErrRateLimited.
func (c *Client) do(req *http.Request) ([]byte, int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(err, "send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes+1))
	if err != nil {
		return nil, resp.StatusCode, errors.Wrap(err, "read response body")
	}
	if len(b) > MaxResponseBytes {
		return nil, resp.StatusCode, ErrResponseTooLarge
	}
	b = bytes.TrimSpace(b)
	if resp.StatusCode == http.StatusTooManyRequests {
		return b, resp.StatusCode, serrors.With(serrors.ErrRateLimited, "rate limited: %s", b)
	}

	return b, resp.StatusCode, nil
}

// Ensure Client conforms to the beefree.Client interface at compile time.
var _ beefree.Client = (*Client)(nil)

// New constructs a Client using httpClient for transport.
func New(httpClient *http.Client, opts Options) *Client {
	if opts.AuthURL == "" {
		opts.AuthURL = DefaultAuthURL
	}
	if opts.ConversionURL == "" {
		opts.ConversionURL = DefaultConversionURL
	}

	return &Client{
		httpClient: httpClient,
		opts:       opts,
	}
}
