package client

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

// NewLiveCommand constructs the `live` command, which tails the relay over
// the websocket gateway.
func NewLiveCommand(baseURL BaseURLFunc) *cobra.Command {
	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "Tail the live trade relay",
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, _ := cmd.Flags().GetString("filter")
			limit, _ := cmd.Flags().GetInt("limit")

			wsURL := strings.Replace(baseURL(), "http", "ws", 1) + "/v1/live"
			conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
			if err != nil {
				return fmt.Errorf("dial %s: %w", wsURL, err)
			}
			defer conn.Close()

			// Interrupt pauses the stream and closes cleanly.
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigCh)
			go func() {
				<-sigCh
				_ = conn.WriteJSON(map[string]string{"action": "stop"})
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				_ = conn.Close()
			}()

			start := map[string]string{"action": "start"}
			if filter != "" {
				start["filter"] = filter
			}
			if err := conn.WriteJSON(start); err != nil {
				return err
			}

			seen := 0
			for limit <= 0 || seen < limit {
				var frame map[string]any
				if err := conn.ReadJSON(&frame); err != nil {
					if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
						return nil
					}
					return err
				}
				out, _ := json.Marshal(frame)
				fmt.Println(string(out))
				if frame["type"] == "record" {
					seen++
				}
			}
			return nil
		},
	}
	liveCmd.Flags().String("filter", "", "CEL expression evaluated per record")
	liveCmd.Flags().Int("limit", 0, "Stop after this many records (0 = unlimited)")
	return liveCmd
}
