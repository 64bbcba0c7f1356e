package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Bruddles/FanaticsSupportRota/config"
	"github.com/Bruddles/FanaticsSupportRota/database"
	"github.com/Bruddles/FanaticsSupportRota/logger"
	"github.com/Bruddles/FanaticsSupportRota/web"
	"github.com/Bruddles/FanaticsSupportRota/web/global"
	"github.com/Bruddles/FanaticsSupportRota/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	global.SetWebServer(server)
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			global.SetWebServer(server)
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			logger.CloseLogger()
			return
		}
	}
}

// resetPassword sets a known password on an account from the command line,
// for recovering a locked-out admin.
func resetPassword(username string, password string) {
	if username == "" || password == "" {
		fmt.Println("username and password are both required")
		return
	}
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}
	userService := service.UserService{}
	if err := userService.ChangePassword(password, username); err != nil {
		fmt.Println("reset password failed:", err)
	} else {
		fmt.Println("reset password success")
	}
}

func main() {
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use: "rota",
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var resetCmd = &cobra.Command{
		Use:   "reset-password",
		Short: "Reset a user's password",
		Run: func(cmd *cobra.Command, args []string) {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			resetPassword(username, password)
		},
	}
	resetCmd.Flags().String("username", "", "account to reset")
	resetCmd.Flags().String("password", "", "new password")

	rootCmd.AddCommand(runCmd, resetCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println("execute failed:", err)
		os.Exit(1)
	}
}
