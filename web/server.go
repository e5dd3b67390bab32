package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/skjjcruz/owner-dashboard-v3/controller"
	"github.com/skjjcruz/owner-dashboard-v3/model"
	"github.com/unrolled/render"
)

//go:embed templates
var templates embed.FS

type Server struct {
	server *http.Server
}

func NewServer(port int, ctrl controller.C) (*Server, error) {
	render := newRender()
	router := getRouter(ctrl, render)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Printf("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"points":   pointsFormatter,
				"datetime": datetimeFormatter,
				"round":    roundFormatter,
				"pairRows": pairRows,
			},
		},
	})
}

func pointsFormatter(points float64) string {
	return fmt.Sprintf("%.1f", points)
}

func datetimeFormatter(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return t.Format("Jan 2, 2006 3:04 PM")
}

// roundFormatter renders a draft round as "1st", "2nd", and so on.
func roundFormatter(round int) string {
	switch round {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", round)
	}
}

// rowPair lines up one row from each side of a comparison group. Either side
// may be nil when the groups differ in size.
type rowPair struct {
	Left  *model.ComparisonRow
	Right *model.ComparisonRow
}

func pairRows(left, right []model.ComparisonRow) []rowPair {
	n := len(left)
	if len(right) > n {
		n = len(right)
	}

	pairs := make([]rowPair, n)
	for i := 0; i < n; i++ {
		if i < len(left) {
			pairs[i].Left = &left[i]
		}
		if i < len(right) {
			pairs[i].Right = &right[i]
		}
	}
	return pairs
}
