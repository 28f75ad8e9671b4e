package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/yusrlabs/yusr/internal/screen"
	"github.com/yusrlabs/yusr/internal/sim"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Yusr Watch API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Render boundary for the Yusr smartwatch companion demo.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of the content database.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/sessions
	postSessions, _ := r.NewOperationContext(http.MethodPost, "/api/sessions")
	postSessions.SetSummary("Create session")
	postSessions.SetDescription("Creates a new watch session and returns its ID with the initial view.")
	postSessions.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	_ = r.AddOperation(postSessions)

	// DELETE /api/sessions/{session}
	deleteSession, _ := r.NewOperationContext(http.MethodDelete, "/api/sessions/{session}")
	deleteSession.SetSummary("Close session")
	deleteSession.SetDescription("Closes the session and cancels its simulated flows.")
	deleteSession.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	deleteSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(deleteSession)

	// GET /api/sessions/{session}/screen
	getScreen, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{session}/screen")
	getScreen.SetSummary("Render current screen")
	getScreen.SetDescription("Renders the session's current screen as a view model.")
	getScreen.AddRespStructure(screen.View{}, openapi.WithHTTPStatus(http.StatusOK))
	getScreen.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getScreen)

	// POST /api/sessions/{session}/navigate
	postNavigate, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/navigate")
	postNavigate.SetSummary("Navigate")
	postNavigate.SetDescription("Sets the current screen. Unknown IDs render the welcome screen.")
	postNavigate.AddReqStructure(NavigateRequest{})
	postNavigate.AddRespStructure(screen.View{}, openapi.WithHTTPStatus(http.StatusOK))
	postNavigate.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postNavigate)

	// POST /api/sessions/{session}/mode
	postMode, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/mode")
	postMode.SetSummary("Select user mode")
	postMode.SetDescription("Chooses pilgrim or organizer mode and moves to the login screen.")
	postMode.AddReqStructure(ModeRequest{})
	postMode.AddRespStructure(screen.View{}, openapi.WithHTTPStatus(http.StatusOK))
	postMode.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	_ = r.AddOperation(postMode)

	// POST /api/sessions/{session}/login
	postLogin, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/login")
	postLogin.SetSummary("Log in")
	postLogin.SetDescription("Accepts any credentials; after a simulated delay the session lands on home.")
	postLogin.AddReqStructure(LoginRequest{})
	postLogin.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusAccepted))
	_ = r.AddOperation(postLogin)

	// POST /api/sessions/{session}/language
	postLanguage, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/language")
	postLanguage.SetSummary("Set language")
	postLanguage.SetDescription("Switches the UI locale. Unsupported codes are rejected.")
	postLanguage.AddReqStructure(LanguageRequest{})
	postLanguage.AddRespStructure(screen.View{}, openapi.WithHTTPStatus(http.StatusOK))
	postLanguage.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	_ = r.AddOperation(postLanguage)

	// POST /api/sessions/{session}/darkmode/toggle
	postDark, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/darkmode/toggle")
	postDark.SetSummary("Toggle dark mode")
	postDark.AddRespStructure(screen.View{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postDark)

	// POST /api/sessions/{session}/fontsize
	postFont, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/fontsize")
	postFont.SetSummary("Set global font size")
	postFont.SetDescription("Accepts sizes between 12 and 24 pixels.")
	postFont.AddReqStructure(FontSizeRequest{})
	postFont.AddRespStructure(screen.View{}, openapi.WithHTTPStatus(http.StatusOK))
	postFont.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	_ = r.AddOperation(postFont)

	// POST /api/sessions/{session}/pin
	postPin, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/pin")
	postPin.SetSummary("Change wallet PIN")
	postPin.SetDescription("Sets a new 4-digit wallet PIN.")
	postPin.AddReqStructure(PinRequest{})
	postPin.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	postPin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	_ = r.AddOperation(postPin)

	// POST /api/sessions/{session}/tawaf/increment
	postLap, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/tawaf/increment")
	postLap.SetSummary("Count a tawaf lap")
	postLap.SetDescription("Adds one lap, clamped at seven. The seventh lap stops auto tracking.")
	postLap.AddRespStructure(screen.View{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postLap)

	// POST /api/sessions/{session}/tawaf/reset
	postReset, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/tawaf/reset")
	postReset.SetSummary("Reset tawaf counter")
	postReset.AddRespStructure(screen.View{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postReset)

	// POST /api/sessions/{session}/tawaf/toggle
	postToggle, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/tawaf/toggle")
	postToggle.SetSummary("Toggle tawaf auto tracking")
	postToggle.AddRespStructure(screen.View{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postToggle)

	// POST /api/sessions/{session}/tasks/toggle
	postTask, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/tasks/toggle")
	postTask.SetSummary("Toggle a daily task")
	postTask.AddReqStructure(TaskToggleRequest{})
	postTask.AddRespStructure(screen.View{}, openapi.WithHTTPStatus(http.StatusOK))
	postTask.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postTask)

	// POST /api/sessions/{session}/wallet/pay
	postPay, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/wallet/pay")
	postPay.SetSummary("Pay from wallet")
	postPay.SetDescription("Deducts an amount after PIN verification.")
	postPay.AddReqStructure(WalletRequest{})
	postPay.AddRespStructure(screen.View{}, openapi.WithHTTPStatus(http.StatusOK))
	postPay.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusForbidden))
	postPay.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postPay)

	// POST /api/sessions/{session}/wallet/charge
	postCharge, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/wallet/charge")
	postCharge.SetSummary("Charge wallet")
	postCharge.SetDescription("Tops up an amount after PIN verification.")
	postCharge.AddReqStructure(WalletRequest{})
	postCharge.AddRespStructure(screen.View{}, openapi.WithHTTPStatus(http.StatusOK))
	postCharge.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusForbidden))
	postCharge.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postCharge)

	// POST /api/sessions/{session}/destination
	postDest, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/destination")
	postDest.SetSummary("Select destination")
	postDest.SetDescription("Selects a landmark and moves to route guidance.")
	postDest.AddReqStructure(DestinationRequest{})
	postDest.AddRespStructure(screen.View{}, openapi.WithHTTPStatus(http.StatusOK))
	postDest.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postDest)

	// DELETE /api/sessions/{session}/destination
	deleteDest, _ := r.NewOperationContext(http.MethodDelete, "/api/sessions/{session}/destination")
	deleteDest.SetSummary("Clear destination")
	deleteDest.AddRespStructure(screen.View{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(deleteDest)

	// POST /api/sessions/{session}/call
	postCall, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/call")
	postCall.SetSummary("Call a sheikh")
	postCall.SetDescription("Starts a simulated call to an available sheikh.")
	postCall.AddReqStructure(CallRequest{})
	postCall.AddRespStructure(sim.CallStatus{}, openapi.WithHTTPStatus(http.StatusAccepted))
	postCall.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postCall.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postCall)

	// GET /api/sessions/{session}/call
	getCall, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{session}/call")
	getCall.SetSummary("Call status")
	getCall.AddRespStructure(sim.CallStatus{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getCall)

	// POST /api/sessions/{session}/call/end
	postCallEnd, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/call/end")
	postCallEnd.SetSummary("End call")
	postCallEnd.AddRespStructure(sim.CallStatus{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postCallEnd)

	// POST /api/sessions/{session}/support/message
	postMsg, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{session}/support/message")
	postMsg.SetSummary("Send support message")
	postMsg.SetDescription("Simulates sending a support message; the state transitions are observable on the event stream.")
	postMsg.AddReqStructure(SupportMessageRequest{})
	postMsg.AddRespStructure(SupportMessageResponse{}, openapi.WithHTTPStatus(http.StatusAccepted))
	postMsg.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postMsg.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postMsg)

	// GET /api/sessions/{session}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{session}/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream of state mutations and simulated-flow progress.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /ws/{session}/view
	getWSView, _ := r.NewOperationContext(http.MethodGet, "/ws/{session}/view")
	getWSView.SetSummary("WebSocket view stream")
	getWSView.SetDescription("Upgrades to a WebSocket that pushes the rendered view after every state change.")
	getWSView.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getWSView)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
