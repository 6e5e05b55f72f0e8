package upload

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, name, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image_file"; filename=%q`, name))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["image_file"][0]
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 7 {
		img.Set(x, x%h, color.RGBA{R: 200, G: 40, B: 90, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type fakeHost struct {
	*httptest.Server
	hits    atomic.Int32
	key     atomic.Value
	gotSize atomic.Value
}

func newFakeHost(t *testing.T, reply string) *fakeHost {
	f := &fakeHost{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		f.key.Store(r.URL.Query().Get("key"))
		if file, _, err := r.FormFile("image"); err == nil {
			if cfg, err := jpeg.DecodeConfig(file); err == nil {
				f.gotSize.Store(image.Pt(cfg.Width, cfg.Height))
			}
		}
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(f.Close)
	return f
}

func TestUpload_RejectsNonImage(t *testing.T) {
	host := newFakeHost(t, `{"success":true,"data":{"url":"https://i.example/x.jpg"}}`)
	h := NewHelper("k", host.URL)
	var states []State
	h.Observe = func(s State) { states = append(states, s) }

	got := h.Upload(context.Background(), fileHeader(t, "notes.txt", "text/plain", []byte("hello")))

	assert.Equal(t, Failed, got.State)
	assert.Equal(t, "Please select an image file", got.Err)
	assert.Empty(t, got.URL)
	assert.Equal(t, int32(0), host.hits.Load())
	assert.Equal(t, []State{Failed}, states)
}

func TestUpload_Success(t *testing.T) {
	host := newFakeHost(t, `{"success":true,"data":{"url":"https://i.example/x.jpg"}}`)
	h := NewHelper("secret", host.URL)
	var states []State
	h.Observe = func(s State) { states = append(states, s) }

	got := h.Upload(context.Background(), fileHeader(t, "wide.png", "image/png", pngBytes(t, 3000, 1000)))

	require.Equal(t, Success, got.State, got.Err)
	assert.Equal(t, "https://i.example/x.jpg", got.URL)
	assert.Equal(t, "secret", host.key.Load())
	assert.Equal(t, image.Pt(1920, 640), host.gotSize.Load())
	assert.Equal(t, []State{Uploading, Success}, states)
}

func TestUpload_HostError(t *testing.T) {
	host := newFakeHost(t, `{"success":false,"error":{"message":"Invalid API v1 key."}}`)
	h := NewHelper("bad", host.URL)

	got := h.Upload(context.Background(), fileHeader(t, "a.png", "image/png", pngBytes(t, 10, 10)))
	assert.Equal(t, Failed, got.State)
	assert.Equal(t, "Invalid API v1 key.", got.Err)
}

func TestUpload_HostGarbage(t *testing.T) {
	host := newFakeHost(t, `<html>bad gateway</html>`)
	h := NewHelper("k", host.URL)

	got := h.Upload(context.Background(), fileHeader(t, "a.png", "image/png", pngBytes(t, 10, 10)))
	assert.Equal(t, Failed, got.State)
	assert.Equal(t, "Upload failed", got.Err)
	assert.Equal(t, int32(1), host.hits.Load())
}

func TestUpload_NotConfigured(t *testing.T) {
	h := NewHelper("", "http://127.0.0.1:1")
	got := h.Upload(context.Background(), fileHeader(t, "a.png", "image/png", pngBytes(t, 10, 10)))
	assert.Equal(t, MsgNotConfigured, got.Err)
}

func TestUpload_UndecodableImage(t *testing.T) {
	host := newFakeHost(t, `{"success":true,"data":{"url":"u"}}`)
	h := NewHelper("k", host.URL)

	got := h.Upload(context.Background(), fileHeader(t, "a.png", "image/png", []byte("not really a png")))
	assert.Equal(t, Failed, got.State)
	assert.Equal(t, MsgUnreadable, got.Err)
	assert.Equal(t, int32(0), host.hits.Load())
}

func TestScale(t *testing.T) {
	small := scale(image.NewRGBA(image.Rect(0, 0, 100, 50)), 1920)
	assert.Equal(t, image.Rect(0, 0, 100, 50), small.Bounds())

	tall := scale(image.NewRGBA(image.Rect(0, 0, 1000, 4000)), 1920)
	assert.Equal(t, 480, tall.Bounds().Dx())
	assert.Equal(t, 1920, tall.Bounds().Dy())
}

func TestCompress_TransparentBecomesWhite(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var src bytes.Buffer
	require.NoError(t, png.Encode(&src, img))

	out, err := compress(&src)
	require.NoError(t, err)
	dec, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	r, g, b, _ := dec.At(31, 31).RGBA()
	assert.Greater(t, r>>8, uint32(240))
	assert.Greater(t, g>>8, uint32(240))
	assert.Greater(t, b>>8, uint32(240))
}

// hugePNG returns a valid PNG whose header claims w x h pixels.
func hugePNG(t *testing.T, w, h uint32) []byte {
	t.Helper()
	data := pngBytes(t, 1, 1)
	// signature(8) length(4) "IHDR"(4) width(4) height(4) ... crc after 13 data bytes
	binary.BigEndian.PutUint32(data[16:20], w)
	binary.BigEndian.PutUint32(data[20:24], h)
	binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))
	return data
}

func TestCompress_RejectsHugeDimensions(t *testing.T) {
	_, err := compress(bytes.NewReader(hugePNG(t, 100_000, 100_000)))
	assert.ErrorIs(t, err, errTooLarge)
}

func TestUpload_HugeImage(t *testing.T) {
	host := newFakeHost(t, `{"success":true,"data":{"url":"u"}}`)
	h := NewHelper("k", host.URL)

	got := h.Upload(context.Background(), fileHeader(t, "a.png", "image/png", hugePNG(t, 60_000, 60_000)))
	assert.Equal(t, Failed, got.State)
	assert.Equal(t, MsgTooLarge, got.Err)
	assert.Equal(t, int32(0), host.hits.Load())
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "photo.jpg", fileName("photo.png"))
	assert.Equal(t, "image.jpg", fileName(""))
}
