package resource

import (
	"errors"
	"net/http"

	"family-care/internal/platform/httpjson"
	"family-care/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Routes describe cómo se expone una colección por HTTP.
type Routes struct {
	// Key y Plural son las claves del JSON de respuesta ({message, <Key>} / {<Plural>: [...]}).
	Key    string
	Plural string

	// AddPath es la ruta de alta ("/add", "/pay", "/feedback").
	AddPath string
	// ListPath es la ruta de listado por dueño; vacío = sin listado.
	ListPath string

	Update bool
	Delete bool

	AddedMessage   string
	UpdatedMessage string

	// OmitCreated responde solo {message} en el alta.
	OmitCreated bool
}

const (
	MsgDeleted  = "Deleted"
	MsgNotFound = "Not found"
)

// Mount registra las rutas de la colección sobre r (ya montado en el prefijo del recurso).
func Mount[T any, PT Record[T]](r chi.Router, svc *Service[T, PT], rt Routes, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"resource": rt.Plural})

	r.Post(rt.AddPath, addHandler(svc, rt, log))
	if rt.ListPath != "" {
		r.Get(rt.ListPath+"/{userID}", listHandler(svc, rt, log))
	}
	if rt.Update {
		r.Put("/update/{id}", updateHandler(svc, rt, log))
	}
	if rt.Delete {
		r.Delete("/delete/{id}", deleteHandler(svc, log))
	}
}

func addHandler[T any, PT Record[T]](svc *Service[T, PT], rt Routes, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := httpjson.DecodeFields(r)
		if err != nil {
			httpjson.Message(w, http.StatusBadRequest, "invalid json")
			return
		}

		rec, err := svc.Add(r.Context(), fields)
		if err != nil {
			writeError(w, log, err)
			return
		}

		log.Debug("record added", map[string]any{"id": PT(&rec).Ref().ID, "user_id": PT(&rec).Ref().UserID})

		if rt.OmitCreated {
			httpjson.Message(w, http.StatusOK, rt.AddedMessage)
			return
		}
		httpjson.Write(w, http.StatusOK, map[string]any{
			"message": rt.AddedMessage,
			rt.Key:    rec,
		})
	}
}

func listHandler[T any, PT Record[T]](svc *Service[T, PT], rt Routes, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httpjson.ParseID(r, "userID")
		if err != nil {
			httpjson.Message(w, http.StatusBadRequest, "invalid user id")
			return
		}

		items, err := svc.List(r.Context(), userID)
		if err != nil {
			writeError(w, log, err)
			return
		}
		if items == nil {
			items = []T{}
		}

		httpjson.Write(w, http.StatusOK, map[string]any{rt.Plural: items})
	}
}

func updateHandler[T any, PT Record[T]](svc *Service[T, PT], rt Routes, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.ParseID(r, "id")
		if err != nil {
			httpjson.Message(w, http.StatusBadRequest, "invalid id")
			return
		}

		fields, err := httpjson.DecodeFields(r)
		if err != nil {
			httpjson.Message(w, http.StatusBadRequest, "invalid json")
			return
		}

		rec, err := svc.Update(r.Context(), id, fields)
		if err != nil {
			writeError(w, log, err)
			return
		}

		httpjson.Write(w, http.StatusOK, map[string]any{
			"message": rt.UpdatedMessage,
			rt.Key:    rec,
		})
	}
}

func deleteHandler[T any, PT Record[T]](svc *Service[T, PT], log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.ParseID(r, "id")
		if err != nil {
			httpjson.Message(w, http.StatusBadRequest, "invalid id")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, log, err)
			return
		}

		httpjson.Message(w, http.StatusOK, MsgDeleted)
	}
}

func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpjson.Message(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		httpjson.Message(w, http.StatusNotFound, MsgNotFound)
	default:
		log.Error("storage error", map[string]any{"err": err})
		httpjson.Message(w, http.StatusInternalServerError, "internal error")
	}
}
