package handler

import (
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jasontodev/NoxusIoniaRL/vizserver/types"
)

var arenaTemplate = template.Must(template.New("arena").Parse(`<!doctype html>
<html>
<head><title>{{.Name}}</title></head>
<body>
<h2>{{.Name}} ({{.Tps}} tps)</h2>
<pre id="frame"></pre>
<script>
var ws = new WebSocket({{.WsURL}});
ws.onmessage = function (msg) {
	document.getElementById("frame").textContent = JSON.stringify(JSON.parse(msg.data), null, 2);
};
</script>
</body>
</html>
`))

func Arena(arenas *types.VizArenaMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		arena := arenas.Get(vars["id"])

		if arena == nil {
			http.Error(w, "ARENA NOT FOUND !", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		arenaTemplate.Execute(w, struct {
			Name  string
			Tps   int
			WsURL string
		}{
			Name:  arena.GetName(),
			Tps:   arena.GetTps(),
			WsURL: "ws://" + r.Host + "/arena/" + arena.GetId() + "/ws",
		})
	}
}
