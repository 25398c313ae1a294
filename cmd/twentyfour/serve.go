package main

import (
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	httpadapter "svw.info/twentyfour/internal/adapters/http"
	"svw.info/twentyfour/internal/config"
	"svw.info/twentyfour/internal/generator"
	"svw.info/twentyfour/internal/hint"
	"svw.info/twentyfour/internal/infrastructure/storage"
	"svw.info/twentyfour/internal/ports"
	"svw.info/twentyfour/internal/solver"
	"svw.info/twentyfour/internal/usecase"
	"svw.info/twentyfour/web"
)

var (
	serveConfig   string
	serveAddr     string
	servePersist  string
	serveLevel    string
	serveSearcher string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the puzzle HTTP server and web UI",
		RunE:  runServe,
	}
)

func init() {
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "path to YAML config file")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&servePersist, "persist-path", "", "save directory (overrides config)")
	serveCmd.Flags().StringVar(&serveLevel, "log-level", "", "trace|debug|info|warn|error (overrides config)")
	serveCmd.Flags().StringVar(&serveSearcher, "searcher", "", "searcher to use: sequential|parallel (overrides config)")
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

// requestLogger logs method, path, status, bytes, and duration in a human-readable format.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

// rateLimit sheds load beyond a global request budget. A full search is
// ~6k evaluations, so the server tolerates plenty; this guards against
// hammering the generate endpoint.
func rateLimit(l *rate.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serveConfig)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if servePersist != "" {
		cfg.DataDir = servePersist
	}
	if serveLevel != "" {
		cfg.LogLevel = serveLevel
	}
	if serveSearcher != "" {
		cfg.Searcher = serveSearcher
	}

	lvl := parseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	_ = os.MkdirAll(cfg.DataDir, 0o755)

	// Choose searcher: sequential by default, parallel via flag/config.
	var s ports.Solver
	switch cfg.Searcher {
	case "parallel":
		ps := solver.NewParallelSearcher()
		if lvl <= slog.LevelDebug {
			ps.Logger = logger
		}
		s = ps
	default:
		ss := solver.NewSearcher()
		if lvl <= slog.LevelDebug {
			ss.Logger = logger
		}
		s = ss
	}

	// Wire providers -> use cases -> HTTP adapter
	g := generator.NewRandom(s, cfg.Width(), time.Now().UnixNano())
	hin := hint.NewFirstStep(s)
	st := storage.NewFS(cfg.DataDir)
	uc := usecase.NewService(s, g, hin, st)
	h := httpadapter.New(uc)
	h.MaxNumber = cfg.Width().Max()

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

	limiter := rate.NewLimiter(rate.Limit(50), 100)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           rateLimit(limiter, requestLogger(logger, mux)),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", cfg.Addr, "persist", cfg.DataDir, "searcher", cfg.Searcher, "width", cfg.DigitWidth)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
