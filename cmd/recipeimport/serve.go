package main

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/recipeimport"
	recslog "github.com/fwojciec/recipeimport/slog"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// maxFormBytes caps the size of a submitted form, pasted HTML included.
const maxFormBytes = 10 << 20

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"duration": recipeimport.FormatDuration,
}).ParseFS(templateFS, "templates/index.html"))

var validate = validator.New(validator.WithRequiredStructEnabled())

// ImportForm is the input of the web import form and the JSON API.
type ImportForm struct {
	APIKey   string `json:"api_key" validate:"required"`
	HTML     string `json:"html" validate:"required"`
	Strategy string `json:"strategy" validate:"required,oneof=single parallel"`
}

// page is the data rendered by the index template.
type page struct {
	Form     ImportForm
	Errors   []string
	Recipe   *recipeimport.Recipe
	JSON     string
	NotFound bool
}

// Run executes the serve command. It blocks until the context is done.
func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := c.Addr
	if addr == "" {
		addr = deps.Addr
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           NewServer(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		deps.Logger.Info("recipe importer listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-deps.Ctx.Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// NewServer returns the HTTP handler for the web form and JSON API.
func NewServer(deps *Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(recoverer(deps.Logger))
	r.Use(requestLogger(deps.Logger))

	r.Get("/", indexHandler())
	r.Post("/import", importFormHandler(deps))
	r.Post("/api/import", importAPIHandler(deps))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

func indexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, http.StatusOK, page{Form: ImportForm{Strategy: string(recipeimport.StrategySingle)}})
	}
}

func importFormHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
		if err := r.ParseForm(); err != nil {
			render(w, http.StatusBadRequest, page{Errors: []string{"could not read form: " + err.Error()}})
			return
		}
		form := ImportForm{
			APIKey:   strings.TrimSpace(r.PostForm.Get("api_key")),
			HTML:     r.PostForm.Get("html"),
			Strategy: r.PostForm.Get("strategy"),
		}

		recipe, ok, err := runImport(deps, r, &form)
		data := page{Form: form}
		data.Form.APIKey = ""
		switch {
		case err != nil:
			data.Errors = errorMessages(err)
			render(w, statusOf(err), data)
			return
		case !ok:
			data.NotFound = true
			render(w, http.StatusUnprocessableEntity, data)
			return
		}

		b, _ := json.MarshalIndent(recipe, "", "  ")
		data.Recipe = &recipe
		data.JSON = string(b)
		render(w, http.StatusOK, data)
	}
}

func importAPIHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form ImportForm
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxFormBytes)).Decode(&form); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid payload"})
			return
		}

		recipe, ok, err := runImport(deps, r, &form)
		switch {
		case err != nil:
			writeJSON(w, statusOf(err), map[string]any{"error": strings.Join(errorMessages(err), "; ")})
		case !ok:
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"error": "no recipe found"})
		default:
			writeJSON(w, http.StatusOK, recipe)
		}
	}
}

// runImport validates form and runs the importer it selects. A missing
// API key falls back to the server's configured credential. The request
// ID doubles as the import ID in logs.
func runImport(deps *Dependencies, r *http.Request, form *ImportForm) (recipeimport.Recipe, bool, error) {
	if form.APIKey == "" {
		form.APIKey = deps.Credential
	}
	if form.Strategy == "" {
		form.Strategy = string(recipeimport.StrategySingle)
	}
	if err := validate.Struct(form); err != nil {
		return recipeimport.Recipe{}, false, err
	}

	importer, err := deps.Importer(recipeimport.Strategy(form.Strategy), deps.NewNormalizer(""))
	if err != nil {
		return recipeimport.Recipe{}, false, err
	}
	ctx := recslog.WithImportID(r.Context(), middleware.GetReqID(r.Context()))
	return importer.Import(ctx, form.HTML, form.APIKey)
}

func statusOf(err error) int {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest
	}
	switch recipeimport.ErrorCode(err) {
	case recipeimport.EINVALID:
		return http.StatusBadRequest
	case recipeimport.EMALFORMED:
		return http.StatusBadGateway
	case recipeimport.EINTERNAL:
		return upstreamStatus(err)
	}
	return http.StatusInternalServerError
}

func errorMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{errorText(err)}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fieldLabel(fe.Field())))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", fieldLabel(fe.Field()), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fieldLabel(fe.Field())))
		}
	}
	return msgs
}

func fieldLabel(field string) string {
	switch field {
	case "APIKey":
		return "API key"
	case "HTML":
		return "HTML"
	}
	return strings.ToLower(field)
}

func render(w http.ResponseWriter, status int, data page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = pageTemplate.Execute(w, data)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(body)
}

// requestLogger logs every request through slog.
func requestLogger(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// recoverer turns handler panics into 500 responses and logs them.
func recoverer(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic recovered", "panic", rec, "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()))
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
