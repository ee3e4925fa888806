// Package remote implements the asset service client over HTTP/JSON.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/assetimport/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.AssetService = (*Client)(nil)

// Client talks to the asset service REST API.
type Client struct {
	endpoint   string
	user       string
	password   string
	httpClient *http.Client
}

// Dial creates a client from the settings and checks that the service answers.
// It fails with domain.ErrConnection when the service cannot be reached.
func Dial(ctx context.Context, settings domain.Settings) (*Client, error) {
	c, err := New(settings, nil)
	if err != nil {
		return nil, err
	}
	if err := c.Ping(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// New creates a client without contacting the service.
// A nil httpClient gets one built from the timeout and connection settings.
func New(settings domain.Settings, httpClient *http.Client) (*Client, error) {
	endpoint := strings.TrimRight(settings.Credentials.Endpoint, "/")
	if endpoint == "" {
		return nil, domain.ErrMissingEndpoint
	}
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConnection, err), "endpoint", endpoint)
	}

	if httpClient == nil {
		httpClient = newHTTPClient(settings)
	}

	return &Client{
		endpoint:   endpoint,
		user:       settings.Credentials.User(),
		password:   settings.Credentials.Password,
		httpClient: httpClient,
	}, nil
}

// newHTTPClient bounds connecting and waiting for response headers by the
// configured timeout. Reading a body is bounded only by the request context.
func newHTTPClient(settings domain.Settings) *http.Client {
	dialer := &net.Dialer{Timeout: settings.HTTPTimeout, KeepAlive: 30 * time.Second}
	return &http.Client{
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           dialer.DialContext,
			TLSHandshakeTimeout:   settings.HTTPTimeout,
			ResponseHeaderTimeout: settings.HTTPTimeout,
			MaxConnsPerHost:       settings.MaxConnections,
			MaxIdleConnsPerHost:   settings.MaxConnections,
		},
	}
}

// Ping checks that the service accepts the configured credentials.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/v1/ping", nil, nil)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrConnection, err), "endpoint", c.endpoint)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		err := zerr.With(zerr.Wrap(domain.ErrConnection, "ping rejected"), "status_code", resp.StatusCode)
		return zerr.With(err, "endpoint", c.endpoint)
	}
	return nil
}

// GetAssetByID returns the asset with the given id.
func (c *Client) GetAssetByID(ctx context.Context, id string) (domain.RemoteAsset, error) {
	var asset domain.RemoteAsset
	err := c.getJSON(ctx, "/v1/assets/"+url.PathEscape(id), nil, &asset)
	if errors.Is(err, errNotFound) {
		return domain.RemoteAsset{}, zerr.With(zerr.Wrap(domain.ErrAssetNotFound, "lookup by id"), "id", id)
	}
	return asset, err
}

// GetContainerByPath returns the container at path.
func (c *Client) GetContainerByPath(ctx context.Context, path string) (domain.Container, error) {
	var container domain.Container
	err := c.getJSON(ctx, "/v1/containers", url.Values{"path": {path}}, &container)
	if errors.Is(err, errNotFound) {
		return domain.Container{}, zerr.With(zerr.Wrap(domain.ErrContainerNotFound, "lookup by path"), "path", path)
	}
	return container, err
}

// GetAssetByName returns the asset called name inside a container.
func (c *Client) GetAssetByName(ctx context.Context, containerID, name string) (domain.RemoteAsset, error) {
	var asset domain.RemoteAsset
	p := "/v1/containers/" + url.PathEscape(containerID) + "/assets"
	err := c.getJSON(ctx, p, url.Values{"name": {name}}, &asset)
	if errors.Is(err, errNotFound) {
		notFound := zerr.With(zerr.Wrap(domain.ErrAssetNotFound, "lookup by name"), "container", containerID)
		return domain.RemoteAsset{}, zerr.With(notFound, "name", name)
	}
	return asset, err
}

// FetchTransformed streams the asset after applying task.
// The no-op task downloads the stored original.
func (c *Client) FetchTransformed(
	ctx context.Context,
	assetID, task string,
	params []domain.TypedParameter,
) (io.ReadCloser, error) {
	base := "/v1/assets/" + url.PathEscape(assetID)

	var (
		resp *http.Response
		err  error
	)
	if task == "" || task == domain.NoopTask {
		resp, err = c.do(ctx, http.MethodGet, base+"/content", nil, nil)
	} else {
		body, marshalErr := json.Marshal(newTransformRequest(task, params))
		if marshalErr != nil {
			return nil, errors.Join(domain.ErrRemoteRequestFailed, marshalErr)
		}
		resp, err = c.do(ctx, http.MethodPost, base+"/transform", nil, bytes.NewReader(body))
	}
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrRemoteRequestFailed, err), "asset", assetID)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return resp.Body, nil
	case http.StatusNotFound:
		closeBody(resp)
		return nil, zerr.With(zerr.Wrap(domain.ErrAssetNotFound, "fetch"), "id", assetID)
	default:
		closeBody(resp)
		return nil, statusError(resp, assetID)
	}
}

type transformRequest struct {
	Task       string           `json:"task"`
	Parameters []parameterValue `json:"parameters"`
}

type parameterValue struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

func newTransformRequest(task string, params []domain.TypedParameter) transformRequest {
	req := transformRequest{Task: task, Parameters: make([]parameterValue, 0, len(params))}
	for _, p := range params {
		req.Parameters = append(req.Parameters, parameterValue{Name: p.Name, Type: p.Kind.String(), Value: p.Value})
	}
	return req
}

var errNotFound = errors.New("not found")

func (c *Client) getJSON(ctx context.Context, p string, query url.Values, v any) error {
	resp, err := c.do(ctx, http.MethodGet, p, query, nil)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrRemoteRequestFailed, err), "path", p)
	}
	defer closeBody(resp)

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return statusError(resp, p)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return zerr.With(errors.Join(domain.ErrRemoteDecodeFailed, err), "path", p)
	}
	return nil
}

func (c *Client) do(
	ctx context.Context,
	method, p string,
	query url.Values,
	body io.Reader,
) (*http.Response, error) {
	target := c.endpoint + p
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	if body == nil {
		body = http.NoBody
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	if c.user != "" {
		req.SetBasicAuth(c.user, c.password)
	}
	req.Header.Set("Accept", "application/json")
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.httpClient.Do(req)
}

func statusError(resp *http.Response, subject string) error {
	err := zerr.With(zerr.Wrap(domain.ErrRemoteRequestFailed, "unexpected status"), "status_code", resp.StatusCode)
	return zerr.With(err, "subject", subject)
}

func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
