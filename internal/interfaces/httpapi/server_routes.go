package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerIDRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/ids", handler.MintIDs)
	mux.HandleFunc("POST /v1/ids/normalize", handler.NormalizeIDs)
}

func registerAssetRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/assets", handler.CreateAsset)
	mux.HandleFunc("POST /v1/assets/import", handler.ImportAssets)
	mux.HandleFunc("POST /v1/assets/lookup", handler.LookupAssets)
	mux.HandleFunc("GET /v1/assets", handler.ListAssets)
	mux.HandleFunc("GET /v1/assets/{assetID}", handler.GetAsset)
	mux.HandleFunc("DELETE /v1/assets/{assetID}", handler.DeleteAsset)
}
