package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPinJSONSendsAuthAndKeyvalues(t *testing.T) {
	var seen struct {
		auth string
		body map[string]any
	}

	pinata := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pinning/pinJSONToIPFS", r.URL.Path)
		seen.auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&seen.body))
		fmt.Fprint(w, `{"IpfsHash":"QmPinned"}`)
	}))
	defer pinata.Close()

	client := NewClient(Config{APIBase: pinata.URL, JWT: "test-jwt"})

	cid, err := client.PinJSON(context.Background(), "my auction", map[string]string{"type": "auction"}, map[string]string{"name": "my auction"})
	require.NoError(t, err)

	assert.Equal(t, "QmPinned", cid)
	assert.Equal(t, "Bearer test-jwt", seen.auth)

	meta, ok := seen.body["pinataMetadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "my auction", meta["name"])
	kvs, ok := meta["keyvalues"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "auction", kvs["type"])
}

func TestPinJSONEmptyHashIsAnError(t *testing.T) {
	pinata := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer pinata.Close()

	client := NewClient(Config{APIBase: pinata.URL})

	_, err := client.PinJSON(context.Background(), "x", nil, map[string]string{})
	assert.Error(t, err)
}

func TestGetFallsBackToSecondGateway(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer broken.Close()

	working := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ipfs/QmContent", r.URL.Path)
		fmt.Fprint(w, `{"name":"hello"}`)
	}))
	defer working.Close()

	client := NewClient(Config{Gateways: []string{broken.URL, working.URL}})

	bs, err := client.Get(context.Background(), "QmContent")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"hello"}`, string(bs))
}

func TestGetMissingEverywhereIsNotFound(t *testing.T) {
	gone := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer gone.Close()

	client := NewClient(Config{Gateways: []string{gone.URL, gone.URL}})

	_, err := client.Get(context.Background(), "QmMissing")

	var notFound ErrNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "QmMissing", notFound.CID)
}

func TestGetAllGatewaysDownIsUnreachable(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer down.Close()

	client := NewClient(Config{Gateways: []string{down.URL}})

	_, err := client.Get(context.Background(), "QmAnything")

	var unreachable ErrUnreachable
	assert.ErrorAs(t, err, &unreachable)
}

func TestGetAuctionMetadataStripsBOM(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "\xef\xbb\xbf"+`{"name":"bom auction","attributes":{"category":"Art","startingBid":2}}`)
	}))
	defer gateway.Close()

	client := NewClient(Config{Gateways: []string{gateway.URL}})

	meta, err := client.GetAuctionMetadata(context.Background(), "QmBom")
	require.NoError(t, err)

	assert.Equal(t, "bom auction", meta.Name)
	assert.Equal(t, "Art", meta.Attributes.Category)
	assert.Equal(t, 2.0, meta.Attributes.StartingBid)
}

func TestGetAuctionMetadataRejectsNonJSON(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>not json</html>")
	}))
	defer gateway.Close()

	client := NewClient(Config{Gateways: []string{gateway.URL}})

	_, err := client.GetAuctionMetadata(context.Background(), "QmHtml")
	assert.Error(t, err)
}

func TestPinIteratorPagesThroughListing(t *testing.T) {
	var offsets []string

	pinata := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/data/pinList", r.URL.Path)
		require.Contains(t, r.URL.Query().Get("metadata[keyvalues]"), `"auction"`)

		offset := r.URL.Query().Get("pageOffset")
		offsets = append(offsets, offset)

		switch offset {
		case "0":
			fmt.Fprint(w, `{"count":3,"rows":[{"ipfs_pin_hash":"Qm1","metadata":{"name":"one"}},{"ipfs_pin_hash":"Qm2","metadata":{"name":"two"}}]}`)
		default:
			fmt.Fprint(w, `{"count":3,"rows":[{"ipfs_pin_hash":"Qm3","metadata":{"name":"three"}}]}`)
		}
	}))
	defer pinata.Close()

	client := NewClient(Config{APIBase: pinata.URL, PageLimit: 2})

	it := client.Pins(PinFilter{Type: "auction"})
	var cids []string
	for it.Next(context.Background()) {
		cids = append(cids, it.Item().CID)
	}

	require.NoError(t, it.Err())
	assert.Equal(t, []string{"Qm1", "Qm2", "Qm3"}, cids)
	assert.Equal(t, []string{"0", "2"}, offsets)
}

func TestPinIteratorSurfacesListingErrors(t *testing.T) {
	pinata := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer pinata.Close()

	client := NewClient(Config{APIBase: pinata.URL})

	it := client.Pins(PinFilter{Type: "auction"})
	assert.False(t, it.Next(context.Background()))

	var unreachable ErrUnreachable
	assert.ErrorAs(t, it.Err(), &unreachable)
}

func TestPinFileUploadsMultipart(t *testing.T) {
	pinata := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pinning/pinFileToIPFS", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "item.png", header.Filename)

		fmt.Fprint(w, `{"IpfsHash":"QmImage"}`)
	}))
	defer pinata.Close()

	client := NewClient(Config{APIBase: pinata.URL})

	cid, err := client.PinFile(context.Background(), "item.png", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "QmImage", cid)
}
