// Package upload compresses images picked in the admin and sends them to
// the image host.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/nexatech/nexatech-web/internal/logging"
)

type State int

const (
	Idle State = iota
	Uploading
	Success
	Failed
)

func (s State) String() string {
	switch s {
	case Uploading:
		return "uploading"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

const (
	MsgNotImage      = "Please select an image file"
	MsgUploadFailed  = "Upload failed"
	MsgNotConfigured = "Image upload is not configured"
	MsgUnreadable    = "Could not read the selected image"
	MsgTooLarge      = "Image dimensions are too large"
)

var errUploadFailed = errors.New(MsgUploadFailed)

// Attempt is the outcome of one upload. URL is set only on Success and Err
// only on Failed.
type Attempt struct {
	State State
	URL   string
	Err   string
}

type Helper struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client

	// Observe, when set, is told about every state change.
	Observe func(State)
}

func NewHelper(apiKey, endpoint string) *Helper {
	return &Helper{
		apiKey:   apiKey,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type hostResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload validates, compresses and uploads fh. Files that are not images
// fail before any network call. There is no retry.
func (h *Helper) Upload(ctx context.Context, fh *multipart.FileHeader) Attempt {
	if fh == nil || !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return h.fail(MsgNotImage)
	}
	if h.apiKey == "" {
		return h.fail(MsgNotConfigured)
	}

	logger := logging.NewLogger(ctx)
	h.transition(Uploading)

	f, err := fh.Open()
	if err != nil {
		logger.LogError("image_upload", err)
		return h.fail(MsgUnreadable)
	}
	defer f.Close()

	data, err := compress(f)
	if err != nil {
		logger.LogError("image_upload", err)
		if errors.Is(err, errTooLarge) {
			return h.fail(MsgTooLarge)
		}
		return h.fail(MsgUnreadable)
	}

	link, err := h.send(ctx, fileName(fh.Filename), data)
	if err != nil {
		logger.LogWarnf("image_upload", "upload of %s failed: %v", fh.Filename, err)
		return h.fail(err.Error())
	}

	logger.LogInfof("image_upload", "uploaded %s (%d bytes)", fh.Filename, len(data))
	h.transition(Success)
	return Attempt{State: Success, URL: link}
}

func (h *Helper) send(ctx context.Context, name string, data []byte) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", name)
	if err != nil {
		return "", errUploadFailed
	}
	if _, err := part.Write(data); err != nil {
		return "", errUploadFailed
	}
	if err := mw.Close(); err != nil {
		return "", errUploadFailed
	}

	u, err := url.Parse(h.endpoint)
	if err != nil {
		return "", errUploadFailed
	}
	q := u.Query()
	q.Set("key", h.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), &body)
	if err != nil {
		return "", errUploadFailed
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return "", errUploadFailed
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errUploadFailed
	}

	var out hostResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", errUploadFailed
	}
	if !out.Success || out.Data.URL == "" {
		if out.Error.Message != "" {
			return "", errors.New(out.Error.Message)
		}
		return "", errUploadFailed
	}
	return out.Data.URL, nil
}

func (h *Helper) fail(msg string) Attempt {
	h.transition(Failed)
	return Attempt{State: Failed, Err: msg}
}

func (h *Helper) transition(s State) {
	if h.Observe != nil {
		h.Observe(s)
	}
}

func fileName(name string) string {
	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	if base == "" || base == "." || base == "/" {
		base = "image"
	}
	return base + ".jpg"
}
