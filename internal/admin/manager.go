package admin

import (
	"context"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authdomain "github.com/nexatech/nexatech-web/internal/auth/domain"
	"github.com/nexatech/nexatech-web/internal/backend"
	"github.com/nexatech/nexatech-web/internal/logging"
	"github.com/nexatech/nexatech-web/internal/upload"
)

// ImageUploader turns a picked file into a hosted image URL.
type ImageUploader interface {
	Upload(ctx context.Context, fh *multipart.FileHeader) upload.Attempt
}

// Manager serves the list, form and delete pages of one entity type.
type Manager[T any] struct {
	base
	view    string
	path    string
	schema  Schema[T]
	res     Resource[T]
	uploads ImageUploader
}

func NewManager[T any](b base, view, path string, schema Schema[T], res Resource[T], uploads ImageUploader) *Manager[T] {
	return &Manager[T]{
		base:    b,
		view:    view,
		path:    path,
		schema:  schema,
		res:     res,
		uploads: uploads,
	}
}

func (m *Manager[T]) Register(rg gin.IRouter) {
	rg.GET("", m.list)
	rg.GET("/new", m.newForm)
	rg.POST("", m.create)
	rg.GET("/:id/edit", m.editForm)
	rg.POST("/:id", m.update)
	rg.GET("/:id/delete", m.confirmDelete)
	rg.POST("/:id/delete", m.delete)
}

func (m *Manager[T]) meta() ViewMeta {
	return ViewMeta{Singular: m.schema.Singular, Plural: m.schema.Plural, Base: m.path, Empty: m.schema.Empty}
}

func (m *Manager[T]) list(c *gin.Context) {
	items, err := m.res.List(c.Request.Context(), m.token(c))
	if err != nil {
		if m.expired(c, err) {
			return
		}
		c.HTML(http.StatusOK, "admin/list", m.page(c, m.schema.Plural, m.view, gin.H{
			"Meta":  m.meta(),
			"Rows":  []Row(nil),
			"Error": backend.UserMessage(err),
		}))
		return
	}

	rows := make([]Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, m.schema.Row(it))
	}
	c.HTML(http.StatusOK, "admin/list", m.page(c, m.schema.Plural, m.view, gin.H{
		"Meta": m.meta(),
		"Rows": rows,
	}))
}

func (m *Manager[T]) newForm(c *gin.Context) {
	m.renderForm(c, http.StatusOK, "", m.schema.blank(), "")
}

func (m *Manager[T]) editForm(c *gin.Context) {
	item, ok := m.find(c, c.Param("id"))
	if !ok {
		return
	}
	m.renderForm(c, http.StatusOK, c.Param("id"), m.schema.Values(item), "")
}

// find looks id up in the current collection. When it cannot, it leaves an
// error banner, redirects to the list and returns false.
func (m *Manager[T]) find(c *gin.Context, id string) (T, bool) {
	var zero T
	items, err := m.res.List(c.Request.Context(), m.token(c))
	if err != nil {
		if m.expired(c, err) {
			return zero, false
		}
		m.flash(c, m.view, authdomain.FlashError, backend.UserMessage(err))
		c.Redirect(http.StatusSeeOther, m.path)
		return zero, false
	}
	for _, it := range items {
		if m.schema.Key(it) == id {
			return it, true
		}
	}
	m.flash(c, m.view, authdomain.FlashError, m.schema.Singular+" not found")
	c.Redirect(http.StatusSeeOther, m.path)
	return zero, false
}

func (m *Manager[T]) create(c *gin.Context) {
	m.submit(c, "")
}

func (m *Manager[T]) update(c *gin.Context) {
	m.submit(c, c.Param("id"))
}

// submit runs the shared create/update flow. An empty id means create.
func (m *Manager[T]) submit(c *gin.Context, id string) {
	ctx := c.Request.Context()
	logger := logging.NewLogger(ctx)
	v, files := m.readForm(c)
	if id != "" {
		if key := m.schema.keyField(); key != "" {
			v[key] = id
		}
	}

	if label := m.schema.missing(v, files); label != "" {
		m.renderForm(c, http.StatusUnprocessableEntity, id, v, label+" is required")
		return
	}

	if msg := m.attachImages(c, v, files); msg != "" {
		m.renderForm(c, http.StatusUnprocessableEntity, id, v, msg)
		return
	}

	item, err := m.schema.Build(v)
	if err != nil {
		m.renderForm(c, http.StatusUnprocessableEntity, id, v, err.Error())
		return
	}

	verb := "created"
	if id == "" {
		err = m.res.Create(ctx, m.token(c), item)
	} else {
		verb = "updated"
		err = m.res.Update(ctx, m.token(c), id, item)
	}
	if err != nil {
		if m.expired(c, err) {
			return
		}
		logger.LogWarnf(m.view, "%s %s failed: %v", strings.TrimSuffix(verb, "d"), m.schema.Key(item), err)
		m.renderForm(c, formStatus(err), id, v, backend.UserMessage(err))
		return
	}

	logger.LogInfof(m.view, "%s %s", verb, m.schema.Key(item))
	m.flash(c, m.view, authdomain.FlashSuccess, m.schema.Singular+" "+verb+" successfully")
	c.Redirect(http.StatusSeeOther, m.path)
}

func (m *Manager[T]) readForm(c *gin.Context) (Values, map[string]bool) {
	v := make(Values, len(m.schema.Fields))
	files := make(map[string]bool)
	for _, f := range m.schema.Fields {
		v[f.Name] = strings.TrimSpace(c.PostForm(f.Name))
		if f.Kind == KindImage {
			if fh, err := c.FormFile(f.Name + "_file"); err == nil && fh.Size > 0 {
				files[f.Name] = true
			}
		}
	}
	return v, files
}

// attachImages uploads picked files and stores their URLs in v. On failure
// the field keeps its previous value and the message is returned.
func (m *Manager[T]) attachImages(c *gin.Context, v Values, files map[string]bool) string {
	for _, f := range m.schema.Fields {
		if f.Kind != KindImage || !files[f.Name] {
			continue
		}
		if m.uploads == nil {
			return upload.MsgNotConfigured
		}
		fh, err := c.FormFile(f.Name + "_file")
		if err != nil {
			return upload.MsgUnreadable
		}
		att := m.uploads.Upload(c.Request.Context(), fh)
		if att.State != upload.Success {
			return att.Err
		}
		v[f.Name] = att.URL
	}
	return ""
}

func (m *Manager[T]) renderForm(c *gin.Context, status int, id string, v Values, errMsg string) {
	editing := id != ""
	action := m.path
	title := "Add " + m.schema.Singular
	if editing {
		action = m.path + "/" + id
		title = "Edit " + m.schema.Singular
	}
	c.HTML(status, "admin/form", m.page(c, title, m.view, gin.H{
		"Meta":    m.meta(),
		"Editing": editing,
		"Action":  action,
		"Fields":  m.schema.views(v, editing),
		"Error":   errMsg,
	}))
}

func (m *Manager[T]) confirmDelete(c *gin.Context) {
	id := c.Param("id")
	name := id
	items, err := m.res.List(c.Request.Context(), m.token(c))
	if err != nil && m.expired(c, err) {
		return
	}
	for _, it := range items {
		if m.schema.Key(it) == id {
			name = m.schema.Row(it).Title
			break
		}
	}
	c.HTML(http.StatusOK, "admin/confirm", m.page(c, "Delete "+m.schema.Singular, m.view, gin.H{
		"Meta":   m.meta(),
		"Name":   name,
		"Action": m.path + "/" + id + "/delete",
	}))
}

func (m *Manager[T]) delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if err := m.res.Delete(ctx, m.token(c), id); err != nil {
		if m.expired(c, err) {
			return
		}
		logging.NewLogger(ctx).LogWarnf(m.view, "delete %s failed: %v", id, err)
		m.flash(c, m.view, authdomain.FlashError, backend.UserMessage(err))
		c.Redirect(http.StatusSeeOther, m.path)
		return
	}
	logging.NewLogger(ctx).LogInfof(m.view, "deleted %s", id)
	m.flash(c, m.view, authdomain.FlashSuccess, m.schema.Singular+" deleted successfully")
	c.Redirect(http.StatusSeeOther, m.path)
}
