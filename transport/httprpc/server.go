// Package httprpc implements the HTTP surface described in the external
// interface: the six JSON routes peers use to gossip transactions,
// blocks, rands, and peer addresses, plus the outbound client nodes use
// to call those same routes on other peers.
package httprpc

import (
	"context"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/driftchain/driftchain/node"
	"github.com/driftchain/driftchain/validation"
)

// Server exposes a Node over the six HTTP routes from the external
// interface.
type Server struct {
	n    *node.Node
	addr string
	srv  *http.Server
	ln   net.Listener
	now  func() float64
}

// NewServer creates a Server on addr for n. now supplies the current
// time (unix seconds) for every inbound validation call.
func NewServer(addr string, n *node.Node, now func() float64) *Server {
	s := &Server{n: n, addr: addr, now: now}
	mux := http.NewServeMux()
	mux.HandleFunc("/known_nodes", s.handleKnownNodes)
	mux.HandleFunc("/node", s.handleNode)
	mux.HandleFunc("/blockchain", s.handleBlockchain)
	mux.HandleFunc("/validation/transaction", s.handleValidateTransaction)
	mux.HandleFunc("/validation/block", s.handleValidateBlock)
	mux.HandleFunc("/validator/rand", s.handleValidatorRand)
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Start binds the port synchronously, then serves in a background
// goroutine.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.ln = ln
	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Printf("[httprpc] server error: %v", err)
		}
	}()
	return nil
}

// Addr returns the listener's address. Useful when started on ":0".
func (s *Server) Addr() net.Addr {
	if s.ln != nil {
		return s.ln.Addr()
	}
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleKnownNodes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.n.KnownPeers())
}

func (s *Server) handleNode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Address string `json:"address"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.n.AcceptPeer(body.Address)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleBlockchain(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, blockListDicts(s.n.ChainList()))
}

func (s *Server) handleValidateTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var body transactionDict
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	tx := body.toTransaction()
	if err := s.n.AcceptTransaction(r.Context(), tx, body.Origin, s.now()); err != nil {
		writeValidationError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleValidateBlock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var body blockDict
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	block := body.toBlock()
	if err := s.n.AcceptBlock(r.Context(), block, body.Origin, s.now()); err != nil {
		writeValidationError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleValidatorRand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var body validatorRandDict
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	vr := body.toValidatorRand()
	if err := s.n.AcceptRand(r.Context(), vr, "", s.now()); err != nil {
		writeValidationError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// writeValidationError maps a validation.Error to its HTTP status: 409
// for NOT_HEAD, 400 for every other kind, 500 for anything untyped.
func writeValidationError(w http.ResponseWriter, err error) {
	kind, ok := validation.KindOf(err)
	if !ok {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	status := http.StatusBadRequest
	if kind == validation.NotHead {
		status = http.StatusConflict
	}
	writeJSON(w, status, map[string]string{"error": string(kind), "detail": err.Error()})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1*1024*1024)
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[httprpc] write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
