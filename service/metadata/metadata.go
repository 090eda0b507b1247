package metadata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	shell "github.com/ipfs/go-ipfs-api"
	"github.com/pkg/errors"

	"github.com/auctionhaus/go-auctionhaus/service/persist"
	"github.com/auctionhaus/go-auctionhaus/util"
	"github.com/auctionhaus/go-auctionhaus/util/retry"
)

// Client pins auction metadata and images to the content-addressed store
// and reads them back through a chain of gateways. The store is eventually
// consistent: a very recent pin may not yet be visible via Get or Pins.
type Client struct {
	httpClient *http.Client
	apiBase    string
	gateways   []string
	ipfs       *shell.Shell
	pageLimit  int
}

// Config for the pinning service and its read gateways. Reads walk Gateways
// in order and fall back to the IPFS API last; every attempt is bounded by
// Timeout so an unreachable gateway cannot suspend the caller indefinitely.
type Config struct {
	APIBase    string
	JWT        string
	Gateways   []string
	IPFSAPIURL string
	Timeout    time.Duration
	PageLimit  int
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = 100
	}

	var ipfsClient *shell.Shell
	if cfg.IPFSAPIURL != "" {
		ipfsClient = shell.NewShell(cfg.IPFSAPIURL)
		ipfsClient.SetTimeout(cfg.Timeout)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: bearerTransport{
				RoundTripper: http.DefaultTransport,
				Token:        cfg.JWT,
			},
		},
		apiBase:   cfg.APIBase,
		gateways:  cfg.Gateways,
		ipfs:      ipfsClient,
		pageLimit: cfg.PageLimit,
	}
}

// ErrNotFound means the content id resolved nowhere: either it was never
// pinned or the store has not propagated it yet.
type ErrNotFound struct {
	CID string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("metadata not found: %s", e.CID)
}

// ErrUnreachable is a transient infrastructure failure: every gateway in the
// chain errored for a reason other than a missing pin.
type ErrUnreachable struct {
	Err error
}

func (e ErrUnreachable) Error() string {
	return fmt.Sprintf("metadata store unreachable: %s", e.Err)
}

func (e ErrUnreachable) Unwrap() error {
	return e.Err
}

type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

// PinJSON pins a JSON document with the given pinata metadata name and
// keyvalue tags, returning its content id. Identical content may or may not
// dedupe; callers must not rely on idempotence.
func (c *Client) PinJSON(ctx context.Context, name string, keyvalues map[string]string, content any) (string, error) {
	kvs := map[string]any{}
	for k, v := range keyvalues {
		kvs[k] = v
	}

	body, err := json.Marshal(map[string]any{
		"pinataMetadata": map[string]any{
			"name":      name,
			"keyvalues": kvs,
		},
		"pinataContent": content,
	})
	if err != nil {
		return "", err
	}

	return c.doPin(ctx, c.apiBase+"/pinning/pinJSONToIPFS", "application/json", body)
}

// PinFile pins a binary blob (an auction image) and returns its content id.
func (c *Client) PinFile(ctx context.Context, name string, r io.Reader) (string, error) {
	buf := &bytes.Buffer{}
	form := multipart.NewWriter(buf)

	part, err := form.CreateFormFile("file", name)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", err
	}
	if err := form.Close(); err != nil {
		return "", err
	}

	return c.doPin(ctx, c.apiBase+"/pinning/pinFileToIPFS", form.FormDataContentType(), buf.Bytes())
}

// doPin posts a pin request, retrying with backoff when the pinning service
// rate limits us.
func (c *Client) doPin(ctx context.Context, pinURL, contentType string, body []byte) (string, error) {
	var pinned pinResponse

	err := retry.RetryFunc(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, pinURL, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", contentType)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return ErrUnreachable{Err: err}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return ErrUnreachable{Err: util.BodyAsError(resp)}
		}
		return json.NewDecoder(resp.Body).Decode(&pinned)
	}, isRateLimited, retry.Retry{Base: 1, Cap: 8, Tries: 3})

	if err != nil {
		if errors.Is(err, retry.ErrOutOfRetries) {
			return "", ErrUnreachable{Err: err}
		}
		return "", err
	}
	if pinned.IpfsHash == "" {
		return "", errors.New("pin response missing content id")
	}
	return pinned.IpfsHash, nil
}

func isRateLimited(err error) bool {
	var httpErr util.ErrHTTP
	return errors.As(err, &httpErr) && httpErr.Status == http.StatusTooManyRequests
}

// Get retrieves pinned content by id, trying each gateway in order and the
// IPFS API last. The fallback chain is a retry policy, not a correctness
// guarantee.
func (c *Client) Get(ctx context.Context, cid string) ([]byte, error) {
	readers := make([]func(ctx context.Context) ([]byte, error), 0, len(c.gateways)+1)
	for _, gateway := range c.gateways {
		gateway := gateway
		readers = append(readers, func(ctx context.Context) ([]byte, error) {
			return c.readGateway(ctx, gateway, cid)
		})
	}
	if c.ipfs != nil {
		readers = append(readers, func(ctx context.Context) ([]byte, error) {
			return c.readShell(cid)
		})
	}

	bs, err := util.FirstNonErrorWithValue(ctx, readers...)
	if err != nil {
		var httpErr util.ErrHTTP
		if errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound {
			return nil, ErrNotFound{CID: cid}
		}
		return nil, ErrUnreachable{Err: err}
	}
	return bs, nil
}

// GetAuctionMetadata retrieves and decodes one auction's pinned record.
// The payload is untrusted; a record that is not JSON at all surfaces as an
// error, while missing fields are left to the aggregator's defaults.
func (c *Client) GetAuctionMetadata(ctx context.Context, cid string) (persist.AuctionMetadata, error) {
	bs, err := c.Get(ctx, cid)
	if err != nil {
		return persist.AuctionMetadata{}, err
	}

	var meta persist.AuctionMetadata
	if err := json.Unmarshal(util.RemoveBOM(bs), &meta); err != nil {
		return persist.AuctionMetadata{}, errors.Wrapf(err, "invalid metadata record %s", cid)
	}
	return meta, nil
}

func (c *Client) readGateway(ctx context.Context, gateway, cid string) ([]byte, error) {
	path := pathURL(gateway, cid)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, util.ErrHTTP{Status: resp.StatusCode, URL: path}
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) readShell(cid string) ([]byte, error) {
	it, err := c.ipfs.Cat(cid)
	if err != nil {
		return nil, err
	}
	defer it.Close()
	return io.ReadAll(it)
}

// pathURL returns the gateway URL in path resolution style
func pathURL(host, cid string) string {
	return fmt.Sprintf("%s/ipfs/%s", host, cid)
}

// bearerTransport decorates each request with the pinning service JWT.
type bearerTransport struct {
	http.RoundTripper
	Token string
}

func (t bearerTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if t.Token != "" {
		r.Header.Set("Authorization", "Bearer "+t.Token)
	}
	return t.RoundTripper.RoundTrip(r)
}

// PinFilter narrows a pin listing by the keyvalue tags recorded at pin time.
type PinFilter struct {
	Type string
}

// PinnedItem is one entry of a pin listing.
type PinnedItem struct {
	CID      string
	Name     string
	PinnedAt string
}

type pinListResponse struct {
	Count int `json:"count"`
	Rows  []struct {
		IpfsPinHash string `json:"ipfs_pin_hash"`
		DatePinned  string `json:"date_pinned"`
		Metadata    struct {
			Name string `json:"name"`
		} `json:"metadata"`
	} `json:"rows"`
}

// Pins returns a lazy iterator over pinned entries matching the filter.
// Pages are fetched on demand; no ordering is guaranteed across pages. The
// iterator is restartable by calling Pins again.
func (c *Client) Pins(filter PinFilter) *PinIterator {
	return &PinIterator{client: c, filter: filter}
}

// PinIterator walks a pin listing page by page.
type PinIterator struct {
	client *Client
	filter PinFilter

	offset int
	buf    []PinnedItem
	pos    int
	done   bool
	err    error
}

// Next advances to the subsequent entry, fetching the next page when the
// buffered one is exhausted. It returns false at the end of the listing or
// on error; Err distinguishes the two.
func (it *PinIterator) Next(ctx context.Context) bool {
	if it.err != nil {
		return false
	}

	if it.pos < len(it.buf) {
		it.pos++
		return true
	}

	if it.done {
		return false
	}

	page, err := it.client.pinList(ctx, it.filter, it.offset)
	if err != nil {
		it.err = err
		return false
	}

	it.offset += len(page)
	it.buf = page
	it.pos = 0
	if len(page) < it.client.pageLimit {
		it.done = true
	}
	if len(page) == 0 {
		return false
	}

	it.pos = 1
	return true
}

// Item returns the entry Next advanced to.
func (it *PinIterator) Item() PinnedItem {
	return it.buf[it.pos-1]
}

// Err returns the error that stopped iteration, if any.
func (it *PinIterator) Err() error {
	return it.err
}

func (c *Client) pinList(ctx context.Context, filter PinFilter, offset int) ([]PinnedItem, error) {
	query := url.Values{}
	query.Set("status", "pinned")
	query.Set("pageLimit", fmt.Sprint(c.pageLimit))
	query.Set("pageOffset", fmt.Sprint(offset))
	if filter.Type != "" {
		kvs, err := json.Marshal(map[string]any{
			"type": map[string]string{"value": filter.Type, "op": "eq"},
		})
		if err != nil {
			return nil, err
		}
		query.Set("metadata[keyvalues]", string(kvs))
	}

	listURL := c.apiBase + "/data/pinList?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ErrUnreachable{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrUnreachable{Err: util.ErrHTTP{Status: resp.StatusCode, URL: listURL}}
	}

	var listing pinListResponse
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, errors.Wrap(err, "decoding pin listing")
	}

	items := make([]PinnedItem, 0, len(listing.Rows))
	for _, row := range listing.Rows {
		items = append(items, PinnedItem{
			CID:      row.IpfsPinHash,
			Name:     row.Metadata.Name,
			PinnedAt: row.DatePinned,
		})
	}
	return items, nil
}
