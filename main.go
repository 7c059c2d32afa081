// File: kessoku/main.go
package main

import (
	"os"

	"go.uber.org/zap"

	"kessoku/api"
	"kessoku/cmd"
	"kessoku/config"
	"kessoku/services/account"
	"kessoku/services/studio"
	"kessoku/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// The auth session is the single holder of the signed-in state,
	// injected into the API client and the account service.
	session := utils.NewAuthSession()
	if token := config.AppConfig.APIToken; token != "" {
		if err := session.SetToken(token); err != nil {
			logger.Warn("ignoring unusable API_TOKEN", zap.Error(err))
		}
	}

	client := api.NewClient(session)

	app := &cmd.App{
		Client:  client,
		Account: &account.DefaultAccountService{API: client, Session: session},
		Studio:  &studio.DefaultStudioService{API: client, Session: session},
		Session: session,
	}

	if err := cmd.NewRootCmd(app).Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
