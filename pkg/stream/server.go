package stream

import (
	"context"
	"net/http"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"
)

// Handler returns a websocket handler that streams hub packets until
// the monitor disconnects.
func (h *Hub) Handler() websocket.Handler {
	return func(conn *websocket.Conn) {
		ch := h.Subscribe()
		defer h.Unsubscribe(ch)
		for pkt := range ch {
			if err := websocket.Message.Send(conn, pkt); err != nil {
				glog.V(2).Infof("monitor dropped: %v", err)
				return
			}
		}
	}
}

// Server serves the hub at /stream. It implements the runner's
// Runnable.
type Server struct {
	Addr string
	Hub  *Hub
}

// Run listens until the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/stream", s.Hub.Handler())
	srv := &http.Server{Addr: s.Addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	select {
	case <-ctx.Done():
		srv.Close()
		<-errCh
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}
