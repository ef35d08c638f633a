package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kai468/chupochess/chess"
	"github.com/kai468/chupochess/session"
)

type handlers struct {
	svc *session.Service
}

type gameJSON struct {
	ID     string            `json:"id"`
	FEN    string            `json:"fen"`
	Board  map[string]string `json:"board"`
	ToMove string            `json:"toMove"`
	State  string            `json:"state"`
	Check  bool              `json:"check"`
	Moves  int               `json:"moves"`
	Hash   string            `json:"hash"`
}

type movesJSON struct {
	From string   `json:"from"`
	To   []string `json:"to"`
}

type playRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Move string `json:"move"`
}

type createRequest struct {
	FEN string `json:"fen"`
}

type errorJSON struct {
	Error string `json:"error"`
}

func toJSON(g session.Game) gameJSON {
	return gameJSON{
		ID:     g.ID,
		FEN:    g.FEN,
		Board:  g.Board,
		ToMove: g.ToMove.String(),
		State:  g.State.String(),
		Check:  g.Check,
		Moves:  g.Moves,
		Hash:   fmt.Sprintf("%016x", g.Hash),
	}
}

// etag covers the position and the move count, since a game can return to an earlier position.
func etag(g session.Game) string { return fmt.Sprintf(`"%016x-%d"`, g.Hash, g.Moves) }

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var g session.Game
	if req.FEN == "" {
		g = h.svc.Create()
	} else {
		var err error
		if g, err = h.svc.CreateFromFEN(req.FEN); err != nil {
			writeError(w, statusFor(err), err)
			return
		}
	}
	w.Header().Set("Location", "/games/"+g.ID)
	w.Header().Set("ETag", etag(g))
	writeJSON(w, http.StatusCreated, toJSON(g))
}

func (h *handlers) view(w http.ResponseWriter, r *http.Request) {
	g, err := h.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	tag := etag(g)
	if r.Header.Get("If-None-Match") == tag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", tag)
	writeJSON(w, http.StatusOK, toJSON(g))
}

func (h *handlers) moves(w http.ResponseWriter, r *http.Request) {
	from, err := chess.ParseLocation(r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	targets, err := h.svc.Moves(chi.URLParam(r, "id"), from)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	out := movesJSON{From: from.String(), To: make([]string, 0, len(targets))}
	for _, to := range targets {
		out.To = append(out.To, to.String())
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) play(w http.ResponseWriter, r *http.Request) {
	var req playRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	notation := req.Move
	if notation == "" {
		notation = req.From + req.To
	}
	m, err := chess.ParseMove(notation)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	g, err := h.svc.Play(chi.URLParam(r, "id"), m.From, m.To)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	w.Header().Set("ETag", etag(g))
	writeJSON(w, http.StatusOK, toJSON(g))
}

// decode reads an optional JSON body; an empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(io.LimitReader(r.Body, 1<<16)).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, chess.ErrNotYourTurn), errors.Is(err, chess.ErrGameOver):
		return http.StatusConflict
	case errors.Is(err, chess.ErrIllegalMove), errors.Is(err, chess.ErrNoPiece),
		errors.Is(err, chess.ErrInvalidLocation), errors.Is(err, chess.ErrInvalidMove),
		errors.Is(err, chess.ErrInvalidFEN):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, errorJSON{Error: err.Error()})
}
