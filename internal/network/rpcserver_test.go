package network

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// fakeNode answers the two JSON-RPC methods the wallet uses.
type fakeNode struct {
	chainID  string            // hex quantity, e.g. "0xaa36a7"
	balances map[string]string // lower case address -> hex wei
	fail     bool              // answer every call with an RPC error
}

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

func newFakeNode(t *testing.T, node fakeNode) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		switch {
		case node.fail:
			resp["error"] = map[string]any{"code": -32000, "message": "node is down"}
		case req.Method == "eth_chainId":
			resp["result"] = node.chainID
		case req.Method == "eth_getBalance":
			var addr string
			if len(req.Params) > 0 {
				_ = json.Unmarshal(req.Params[0], &addr)
			}
			bal, ok := node.balances[strings.ToLower(addr)]
			if !ok {
				bal = "0x0"
			}
			resp["result"] = bal
		default:
			resp["error"] = map[string]any{"code": -32601, "message": "method not found"}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}
