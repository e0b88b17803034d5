package api

import (
	"net/http"
)

// ルートの設定
func (s *Server) setupRoutes(router *http.ServeMux) {
	// デバイス関連のエンドポイント
	router.HandleFunc("/api/devices", s.handleGetDevices)

	// プロパティ関連のエンドポイント
	router.HandleFunc("/api/properties", s.handleGetProperties)

	// 設定関連のエンドポイント
	router.HandleFunc("/api/config", s.handleGetConfig)

	// ヘルスチェック用エンドポイント
	router.HandleFunc("/api/health", s.handleHealthCheck)
}

// デバイス一覧取得ハンドラ
func (s *Server) handleGetDevices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.hub.ListDevices())
}

// プロパティ一覧取得ハンドラ
func (s *Server) handleGetProperties(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.props.All())
}

// 設定取得ハンドラ
func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.GetConfig())
}

// ヘルスチェックハンドラ
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := s.hub.ErrorCheck(); err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
