package students

import (
	"net/http"
	"strconv"

	"gestion-etudiants/internal/logger"
	"gestion-etudiants/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Index renders the listing with grouped statistics for any
// authenticated identity.
func (h *Handler) Index(c *gin.Context) {
	ident, _ := middleware.IdentityFromContext(c)

	etudiants, err := h.store.List(c.Request.Context())
	if err != nil {
		serverError(c, "list students", err)
		return
	}

	stats, err := h.store.CountBySexe(c.Request.Context())
	if err != nil {
		serverError(c, "count students", err)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"etudiants": etudiants,
		"stats":     stats,
		"user":      ident,
	})
}

func (h *Handler) AddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add.html", gin.H{})
}

func (h *Handler) Add(c *gin.Context) {
	st := studentFromForm(c)

	if _, err := h.store.Create(c.Request.Context(), st); err != nil {
		serverError(c, "create student", err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) EditForm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	st, err := h.store.GetByID(c.Request.Context(), id)
	if err == ErrNotFound {
		// Editing a vanished record falls back to the listing.
		c.Redirect(http.StatusFound, "/")
		return
	}
	if err != nil {
		serverError(c, "load student", err)
		return
	}

	c.HTML(http.StatusOK, "edit.html", gin.H{
		"etudiant": st,
	})
}

func (h *Handler) Edit(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	st := studentFromForm(c)
	st.ID = id

	if err := h.store.Update(c.Request.Context(), st); err != nil {
		serverError(c, "update student", err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		serverError(c, "delete student", err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func studentFromForm(c *gin.Context) Student {
	return Student{
		Matricule:     c.PostForm("matricule"),
		Nom:           c.PostForm("nom"),
		Prenom:        c.PostForm("prenom"),
		DateNaissance: c.PostForm("datenaissance"),
		Filiere:       c.PostForm("filiere"),
		Universite:    c.PostForm("universite"),
		Adresse:       c.PostForm("adresse"),
		Sexe:          c.PostForm("sexe"),
		Nationalite:   c.PostForm("nationalite"),
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.String(http.StatusNotFound, "Not Found")
		c.Abort()
		return 0, false
	}
	return id, true
}

func serverError(c *gin.Context, op string, err error) {
	logger.Error("store failure", map[string]any{
		"op":    op,
		"error": err.Error(),
	})
	c.String(http.StatusInternalServerError, "Erreur serveur")
	c.Abort()
}
