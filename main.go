package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/google/uuid"
)

// PlanResponse carries the computed path. Direct is set when the planner
// fell back to a two-point path, meaning no safe route was found.
type PlanResponse struct {
	Path      []Point `json:"path"`
	Direct    bool    `json:"direct"`
	Waypoints int     `json:"waypoints"`
	Length    float64 `json:"length"`
}

// ContainsRequest asks whether a point is inside or on a polygon
type ContainsRequest struct {
	Point   Point      `json:"point"`
	Polygon RawPolygon `json:"polygon"`
}

type ContainsResponse struct {
	Contained bool `json:"contained"`
}

var (
	// Polygons loaded from disk at startup, used when a plan request
	// carries none of its own
	defaultPolygons []RawPolygon
	defaultMutex    sync.RWMutex
)

// corsMiddleware adds CORS headers to allow frontend requests
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// POST /plan - compute a collision-free path for a scene
func planHandler(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()
	log.Println("========================================")
	log.Printf("📍 Plan request received (id %s)\n", reqID)

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Polygons == nil {
		defaultMutex.RLock()
		req.Polygons = defaultPolygons
		defaultMutex.RUnlock()
	}

	log.Printf("   Start: (%d, %d)\n", req.Start.X, req.Start.Y)
	log.Printf("   End:   (%d, %d)\n", req.End.X, req.End.Y)
	log.Printf("   Polygons: %d, bounds %dx%d, optimization level %d\n",
		len(req.Polygons), req.Width, req.Height, req.OptimizationLevel)

	path := PlanPath(req)

	// Strip the sentinel for reporting; the response still carries it
	waypoints := len(path) - 1
	var length float64
	for i := 0; i < waypoints-1; i++ {
		length += path[i].Distance(path[i+1])
	}

	resp := PlanResponse{
		Path:      path,
		Direct:    waypoints == 2,
		Waypoints: waypoints,
		Length:    length,
	}

	if resp.Direct {
		log.Printf("⚠️  No safe route found, returning fallback path (id %s)\n", reqID)
	} else {
		log.Printf("✅ Path found with %d waypoints, length %.2f (id %s)\n", waypoints, length, reqID)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
	log.Println("========================================")
}

// POST /contains - static point-in-polygon hit test
func containsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ContainsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ContainsResponse{
		Contained: ContainsPoint(req.Point, req.Polygon),
	})
}

// GET /health - Health check endpoint
func healthHandler(w http.ResponseWriter, r *http.Request) {
	defaultMutex.RLock()
	numPolygons := len(defaultPolygons)
	defaultMutex.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":          "ready",
		"defaultPolygons": numPolygons,
	})
}

func main() {
	log.Println("========================================")
	log.Println("🚶 Walk Planner Server (visibility graph)")
	log.Println("========================================")

	// Optionally preload a scene from disk
	sceneFile := os.Getenv("SCENE_FILE")
	if sceneFile == "" {
		sceneFile = "scene.geojson"
	}
	if polygons, err := LoadSceneFromGeoJSON(sceneFile); err == nil {
		defaultMutex.Lock()
		defaultPolygons = polygons
		defaultMutex.Unlock()
		log.Printf("✅ Loaded default scene from %s (%d polygons)\n", sceneFile, len(polygons))
	} else {
		log.Println("ℹ️  No default scene loaded (requests must carry their own polygons)")
	}
	log.Println("")

	http.HandleFunc("/plan", corsMiddleware(planHandler))
	http.HandleFunc("/contains", corsMiddleware(containsHandler))
	http.HandleFunc("/health", corsMiddleware(healthHandler))

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	log.Printf("Server starting on %s\n", addr)
	log.Println("")
	log.Println("Endpoints:")
	log.Println("  POST /plan      - Compute a collision-free path")
	log.Println("  POST /contains  - Point-in-polygon hit test")
	log.Println("  GET  /health    - Check server status")
	log.Println("")
	log.Println("CORS enabled for all origins")
	log.Println("========================================")
	log.Println("")

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal(err)
	}
}
