package handler

import (
	"html"
	"net/http"
	"strconv"

	"github.com/jasontodev/NoxusIoniaRL/vizserver/types"
)

func Home(arenas *types.VizArenaMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<h2>Noxus vs Ionia</h2>"))

		for _, arena := range arenas.ToArray() {
			w.Write([]byte("<a href='/arena/" + html.EscapeString(arena.GetId()) + "'>" + html.EscapeString(arena.GetName()) + " (" + strconv.Itoa(arena.GetNumberWatchers()) + " watchers right now)</a><br />"))
		}
	}
}
