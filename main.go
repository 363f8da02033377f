package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beka-birhanu/labyrinth-api/api"
	api_i "github.com/beka-birhanu/labyrinth-api/api/i"
	"github.com/beka-birhanu/labyrinth-api/api/identity"
	puzzleapi "github.com/beka-birhanu/labyrinth-api/api/puzzle"
	"github.com/beka-birhanu/labyrinth-api/config"
	"github.com/beka-birhanu/labyrinth-api/infrastruture/token"
	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/beka-birhanu/labyrinth-api/service"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	puzzleManager    i.PuzzleManager
	jwtTokenizer     i.Tokenizer
	puzzleController api_i.Controller
	router           *api.Router
	appLogger        *log.Logger
)

func initPuzzleManager() {
	managerLogger := log.New(os.Stdout, config.ColorCyan+"[PUZZLE-MANAGER] "+config.ColorReset, log.LstdFlags)

	var err error
	puzzleManager, err = service.NewPuzzleManager(&service.Config{
		MazeFactory: maze.Generate,
		Logger:      managerLogger,
	})
	if err != nil {
		appLogger.Printf("%s[ERROR]%s creating puzzle manager: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Puzzle manager initialized", config.LogInfoColor, config.LogColorReset)
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Printf("%s[INFO]%s JWT Tokenizer initialized", config.LogInfoColor, config.LogColorReset)
}

func initPuzzleController() {
	var err error
	puzzleController, err = puzzleapi.NewPuzzleController(puzzleManager, jwtTokenizer, puzzleapi.Defaults{
		Width:           config.Envs.MazeWidth,
		Height:          config.Envs.MazeHeight,
		Branches:        config.Envs.MazeBranches,
		BranchMaxLength: config.Envs.MazeBranchMaxLength,
	})
	if err != nil {
		appLogger.Printf("%s[ERROR]%s creating puzzle controller: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Puzzle controller initialized", config.LogInfoColor, config.LogColorReset)
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{puzzleController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Printf("%s[INFO]%s Router initialized", config.LogInfoColor, config.LogColorReset)
}

func main() {
	gin.SetMode(config.Envs.GinMode)

	// Initialize dependencies
	appLogger = log.New(os.Stdout, config.ColorGreen+"[APP] "+config.ColorReset, log.LstdFlags)

	initPuzzleManager()
	initJWTTokenizer()
	initPuzzleController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Printf("%s[ERROR]%s Starting server: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
}
