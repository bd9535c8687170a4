package main

import (
	"html/template"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpadapter "svw.info/squaredaway/internal/adapters/http"
	"svw.info/squaredaway/internal/config"
	"svw.info/squaredaway/internal/generator"
	"svw.info/squaredaway/internal/hint"
	"svw.info/squaredaway/internal/infrastructure/storage"
	"svw.info/squaredaway/internal/ports"
	"svw.info/squaredaway/internal/solver"
	"svw.info/squaredaway/internal/usecase"
	"svw.info/squaredaway/internal/validator"
	"svw.info/squaredaway/web"
)

var flagConfig string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the puzzle web service",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "path to YAML config (optional)")
}

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sw.status),
			zap.Int("bytes", sw.bytes),
			zap.Duration("dur", time.Since(start).Round(time.Millisecond)),
		)
	})
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("engine") {
		cfg.Engine = flagEngine
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var st ports.Storage
	switch cfg.Storage {
	case "sqlite":
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return err
		}
		db, err := storage.NewSQLite(cfg.SQLitePath)
		if err != nil {
			return err
		}
		defer db.Close()
		st = db
	default:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return err
		}
		st = storage.NewFS(cfg.DataDir)
	}

	engine := solver.EngineByName(cfg.Engine)
	s := solver.NewTwoPhase(engine)
	uc := usecase.NewService(s, generator.NewCheckedGenerator(s), validator.New(), hint.NewForcedCells(engine), st)
	h := httpadapter.New(uc)

	tmpl := web.Templates()
	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.ExecuteTemplate(w, "index.tmpl", map[string]any{}); err != nil {
			http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
		}
	})
	h.Register(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening",
		zap.String("addr", cfg.Addr),
		zap.String("storage", cfg.Storage),
		zap.String("engine", engine.Name()),
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", zap.Error(err))
		return err
	}
	return nil
}
