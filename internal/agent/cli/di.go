package cli

import (
	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/api"
	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/memory"
	"github.com/spf13/cobra"
)

// для тестов
var (
	NewAPIClient       = api.NewClient
	SaveProductsToFile = memory.SaveToFile
	ReadPassword       = func(cmd *cobra.Command, fromStdin bool) (string, error) {
		return readPassword(cmd, fromStdin)
	}
)
