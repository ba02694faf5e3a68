package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-metadata-console/internal/config"
	"github.com/MKhiriev/go-metadata-console/internal/logger"
	"github.com/MKhiriev/go-metadata-console/internal/utils"
	"github.com/MKhiriev/go-metadata-console/models"
	"github.com/go-resty/resty/v2"
)

const (
	metadatasPath  = "/api/metadatas"
	retryWaitTime  = 200 * time.Millisecond
	metadataIDPath = metadatasPath + "/{metadataId}"
)

type httpMetadataStore struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPMetadataStore constructs an HTTP/REST implementation of
// [MetadataStore]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL, the request timeout and read retries.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPMetadataStore(adapterCfg config.Adapter, logger *logger.Logger) (MetadataStore, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().WithReadRetries(adapterCfg.RetryCount, retryWaitTime)
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	h := &httpMetadataStore{client: client, logger: logger}
	client.OnAfterResponse(h.logResponse)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchByID implements [MetadataStore]. It calls GET /api/metadatas/{id} and
// decodes the record, keeping unknown attributes in [models.Metadata.Fields].
func (h *httpMetadataStore) FetchByID(ctx context.Context, id string) (models.Metadata, error) {
	if strings.TrimSpace(id) == "" {
		return models.Metadata{}, ErrEmptyID
	}

	resp, err := h.request(ctx).
		SetPathParam("metadataId", id).
		Get(metadataIDPath)
	if err != nil {
		return models.Metadata{}, fmt.Errorf("fetch metadata request: %w: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Metadata{}, err
	}

	return decodeMetadata(resp.Body())
}

// Update implements [MetadataStore]. It sends the partial update as
// PATCH /api/metadatas/{id}; only the fields set in update are serialised.
func (h *httpMetadataStore) Update(ctx context.Context, id string, update models.MetadataUpdate) (models.Metadata, error) {
	if strings.TrimSpace(id) == "" {
		return models.Metadata{}, ErrEmptyID
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("metadataId", id).
		SetBody(update).
		Patch(metadataIDPath)
	if err != nil {
		return models.Metadata{}, fmt.Errorf("update metadata request: %w: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Metadata{}, err
	}

	return decodeMetadata(resp.Body())
}

// DeleteByID implements [MetadataStore]. It calls DELETE /api/metadatas/{id}.
func (h *httpMetadataStore) DeleteByID(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyID
	}

	resp, err := h.request(ctx).
		SetPathParam("metadataId", id).
		Delete(metadataIDPath)
	if err != nil {
		return fmt.Errorf("delete metadata request: %w: %w", ErrUnreachable, err)
	}

	return mapHTTPError(resp)
}

// List implements [MetadataStore]. It calls
// GET /api/metadatas?nameContains=&page=&size= and decodes the page envelope.
func (h *httpMetadataStore) List(ctx context.Context, req models.ListRequest) (models.MetadataPage, error) {
	r := h.request(ctx).
		SetQueryParam("page", strconv.Itoa(req.Page))
	if req.Size > 0 {
		r.SetQueryParam("size", strconv.Itoa(req.Size))
	}
	if name := strings.TrimSpace(req.NameContains); name != "" {
		r.SetQueryParam("nameContains", name)
	}

	resp, err := r.Get(metadatasPath)
	if err != nil {
		return models.MetadataPage{}, fmt.Errorf("list metadata request: %w: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MetadataPage{}, err
	}

	var page models.MetadataPage
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return models.MetadataPage{}, fmt.Errorf("decode metadata page: %w: %w", ErrMalformedPayload, err)
	}

	return page, nil
}

func (h *httpMetadataStore) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpMetadataStore) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("trace_id", resp.Request.Header.Get(utils.TraceIDHeader)).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("catalog response")
	return nil
}

func decodeMetadata(body []byte) (models.Metadata, error) {
	var m models.Metadata
	if err := json.Unmarshal(body, &m); err != nil {
		return models.Metadata{}, fmt.Errorf("decode metadata: %w: %w", ErrMalformedPayload, err)
	}
	return m, nil
}
