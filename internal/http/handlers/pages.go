package handlers

import (
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/rs/zerolog/log"
)

// Page files inside the pages filesystem.
const (
	PageIndex         = "index.html"
	PageLogin         = "login.html"
	PageRegisterUser  = "cadastroUsuarios.html"
	PageRegisterClass = "cadastroTurmas.html"
	PageStudent       = "aluno.html"
)

// PageHandler serves the HTML pages and public static assets.
type PageHandler struct {
	pages  fs.FS
	static fs.FS
	gate   func(http.Handler) http.Handler
}

// NewPageHandler constructs the handler; gate guards the protected pages.
func NewPageHandler(pages, static fs.FS, gate func(http.Handler) http.Handler) *PageHandler {
	return &PageHandler{pages: pages, static: static, gate: gate}
}

// Register attaches page routes to the mux.
func (h *PageHandler) Register(mux *http.ServeMux) {
	mux.Handle("GET /{$}", h.page(PageIndex))
	mux.Handle("GET /login", h.page(PageLogin))
	mux.Handle("GET /cadastro", h.page(PageRegisterUser))
	mux.Handle("GET /cadastro-turma", h.gate(h.page(PageRegisterClass)))
	mux.Handle("GET /aluno", h.gate(h.page(PageStudent)))
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(noListingFS{h.static})))
}

func (h *PageHandler) page(name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := streamFile(w, h.pages, name); err != nil {
			log.Err(err).Str("page", name).Msg("serve page failed")
			http.Error(w, "page unavailable", http.StatusInternalServerError)
		}
	})
}

// noListingFS hides directories that have no index.html so the file server
// answers 404 instead of rendering a listing.
type noListingFS struct {
	fs.FS
}

func (n noListingFS) Open(name string) (fs.File, error) {
	f, err := n.FS.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		if _, err := fs.Stat(n.FS, path.Join(name, "index.html")); err != nil {
			f.Close()
			return nil, fs.ErrNotExist
		}
	}
	return f, nil
}

func streamFile(w http.ResponseWriter, fsys fs.FS, name string) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}

	ctype := mime.TypeByExtension(strings.ToLower(path.Ext(name)))
	if ctype == "" {
		ctype = http.DetectContentType(data)
	}
	if strings.HasPrefix(ctype, "text/") && !strings.Contains(strings.ToLower(ctype), "charset=") {
		ctype += "; charset=utf-8"
	}
	w.Header().Set("Content-Type", ctype)
	_, err = w.Write(data)
	return err
}
