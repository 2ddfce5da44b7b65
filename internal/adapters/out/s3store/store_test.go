package s3store_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"printorders/internal/adapters/out/s3store"
	"printorders/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bucket = "print-orders"

// fakeBucket serves the handful of path-style S3 calls the store makes.
type fakeBucket struct {
	mu          sync.Mutex
	objects     map[string][]byte
	contentType map[string]string
	failAll     bool
}

func newFakeBucket() *fakeBucket {
	return &fakeBucket{objects: map[string][]byte{}, contentType: map[string]string{}}
}

func (f *fakeBucket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failAll {
		http.Error(w, "nope", http.StatusForbidden)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/"+bucket)
	key := strings.TrimPrefix(path, "/")

	switch {
	case r.Method == http.MethodGet && key == "" && r.URL.Query().Get("list-type") == "2":
		prefix := r.URL.Query().Get("prefix")
		keys := make([]string, 0)
		for k := range f.objects {
			if strings.HasPrefix(k, prefix) {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)

		var b strings.Builder
		b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
		b.WriteString(`<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">`)
		fmt.Fprintf(&b, "<Name>%s</Name><Prefix>%s</Prefix><KeyCount>%d</KeyCount>", bucket, prefix, len(keys))
		b.WriteString("<MaxKeys>1000</MaxKeys><IsTruncated>false</IsTruncated>")
		for _, k := range keys {
			fmt.Fprintf(&b, "<Contents><Key>%s</Key><Size>%d</Size></Contents>", k, len(f.objects[k]))
		}
		b.WriteString("</ListBucketResult>")
		w.Header().Set("Content-Type", "application/xml")
		_, _ = io.WriteString(w, b.String())

	case r.Method == http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[key] = body
		f.contentType[key] = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)

	case r.Method == http.MethodGet:
		body, ok := f.objects[key]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`)
			return
		}
		w.Header().Set("Content-Type", f.contentType[key])
		w.Header().Set("Content-Length", fmt.Sprint(len(body)))
		_, _ = w.Write(body)

	default:
		http.Error(w, "unsupported", http.StatusNotImplemented)
	}
}

func newStore(t *testing.T, fake *fakeBucket) *s3store.Store {
	t.Helper()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	return s3store.New(s3store.Options{
		Bucket:    bucket,
		Region:    "us-east-1",
		AccessKey: "AKIDEXAMPLE",
		SecretKey: "secret",
		Endpoint:  server.URL,
	}, func(o *s3.Options) {
		o.RetryMaxAttempts = 1
	})
}

func TestStore_PutThenGetJSON(t *testing.T) {
	fake := newFakeBucket()
	store := newStore(t, fake)
	ctx := context.Background()

	require.NoError(t, store.PutJSON(ctx, "stats/2026-03-10.json", []byte(`{"total":3}`)))

	body, err := store.GetJSON(ctx, "stats/2026-03-10.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":3}`, string(body))
	assert.Equal(t, "application/json", fake.contentType["stats/2026-03-10.json"])
}

func TestStore_GetJSON_MissingKey(t *testing.T) {
	store := newStore(t, newFakeBucket())

	_, err := store.GetJSON(context.Background(), "stats/1999-01-01.json")

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestStore_List(t *testing.T) {
	fake := newFakeBucket()
	fake.objects["stats/2026-03-09.json"] = []byte("{}")
	fake.objects["stats/2026-03-10.json"] = []byte("{}")
	fake.objects["orders/1_a.pdf"] = []byte("%PDF")
	store := newStore(t, fake)

	keys, err := store.List(context.Background(), "stats/")

	require.NoError(t, err)
	assert.Equal(t, []string{"stats/2026-03-09.json", "stats/2026-03-10.json"}, keys)
}

func TestStore_UpstreamFailure(t *testing.T) {
	fake := newFakeBucket()
	fake.failAll = true
	store := newStore(t, fake)
	ctx := context.Background()

	_, err := store.List(ctx, "stats/")
	assert.ErrorIs(t, err, errs.ErrUpstream)

	err = store.PutJSON(ctx, "stats/x.json", []byte("{}"))
	assert.ErrorIs(t, err, errs.ErrUpstream)
}

func TestStore_Presign(t *testing.T) {
	store := newStore(t, newFakeBucket())
	ctx := context.Background()

	putURL, err := store.PresignPut(ctx, "orders/1_Field_Notes.pdf", "application/pdf", time.Minute)
	require.NoError(t, err)
	put, err := url.Parse(putURL)
	require.NoError(t, err)
	assert.Equal(t, "/"+bucket+"/orders/1_Field_Notes.pdf", put.Path)
	assert.Equal(t, "60", put.Query().Get("X-Amz-Expires"))
	assert.Contains(t, put.Query().Get("X-Amz-SignedHeaders"), "content-type")

	getURL, err := store.PresignGet(ctx, "orders/1_Field_Notes.pdf", time.Minute)
	require.NoError(t, err)
	get, err := url.Parse(getURL)
	require.NoError(t, err)
	assert.Equal(t, "/"+bucket+"/orders/1_Field_Notes.pdf", get.Path)
	assert.NotEmpty(t, get.Query().Get("X-Amz-Signature"))
}
