// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers for the keys used across struct-env.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format, applies the level and any static attributes, and returns the logger.
// The default is JSON at INFO level written to stderr.
//
// # Usage
//
//	import "github.com/Hanaasagi/struct-env/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithAutoFormat(os.Stderr),
//	        logger.WithLevel(slog.LevelDebug),
//	    )
//	    logger.SetAsDefault(log)
//
//	    cfg, err := structenv.FromEnv[Config](structenv.WithLogger(log))
//	    if err != nil {
//	        log.Error("decode failed", logger.Error(err))
//	    }
//	}
//
// # Configuration
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the output format.
//   - WithAutoFormat writes to a file and uses text only when it is a terminal,
//     detected with golang.org/x/term.
//   - WithLevel sets the minimum level; WithHandlerOptions replaces the handler
//     options wholesale.
//   - WithAttr attaches static attributes.
//
// # Attributes
//
// Field, Key, Prefix, Shape and Files keep attribute names consistent between
// the decoder's debug traces and the command line tool. Error and Errors return
// an empty Attr for nil errors, so they can be passed unconditionally:
//
//	log.Info("decoded", logger.Error(err))
package logger
