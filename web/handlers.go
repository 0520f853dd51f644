package web

import (
	"net/http"

	"github.com/chickenThug/geoguessr-analyzer/controller"
	"github.com/unrolled/render"
)

func teamDuelRoundsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rounds, err := ctrl.ListEnrichedRounds(r.Context())
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, rounds)
	}
}
