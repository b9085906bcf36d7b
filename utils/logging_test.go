package utils

import (
	"bytes"
	"encoding/json"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	. "gopkg.in/check.v1"
)

type LoggingSuite struct {
	origLogger zerolog.Logger
}

var _ = Suite(&LoggingSuite{})

func (s *LoggingSuite) SetUpTest(c *C) {
	s.origLogger = log.Logger
}

func (s *LoggingSuite) TearDownTest(c *C) {
	log.Logger = s.origLogger
}

func (s *LoggingSuite) TestLogWriter(c *C) {
	var buf bytes.Buffer
	logWriter := LogWriter{Logger: zerolog.New(&buf)}

	n, err := logWriter.Write([]byte("GET /api/version"))
	c.Check(err, IsNil)
	c.Check(n, Equals, 16)
	c.Check(buf.String(), Matches, `\{"level":"info","component":"http","message":"GET /api/version"\}\n`)

	buf.Reset()
	_, _ = logWriter.Write([]byte("[GIN-debug] Listening\n"))
	c.Check(buf.String(), Matches, `.*"message":"\[GIN-debug\] Listening"\}\n`)
}

func (s *LoggingSuite) TestSetupJSONLogger(c *C) {
	var buf bytes.Buffer
	SetupJSONLogger("info", &buf)

	log.Debug().Msg("hidden")
	c.Check(buf.Len(), Equals, 0)

	log.Info().Str("query", "artist = mu").Msg("parsed")

	var entry map[string]interface{}
	c.Assert(json.Unmarshal(buf.Bytes(), &entry), IsNil)
	c.Check(entry["message"], Equals, "parsed")
	c.Check(entry["level"], Equals, "info")
	c.Check(entry["query"], Equals, "artist = mu")
	c.Check(entry["time"], NotNil)
}

func (s *LoggingSuite) TestSetupLogger(c *C) {
	SetupLogger("error", "default")
	c.Check(log.Logger.GetLevel(), Equals, zerolog.ErrorLevel)

	SetupLogger("warning", "JSON")
	c.Check(log.Logger.GetLevel(), Equals, zerolog.WarnLevel)
}

func (s *LoggingSuite) TestGetLogLevelOrDebug(c *C) {
	for levelStr, expected := range map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"Warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"trace":   zerolog.TraceLevel,
		"off":     zerolog.Disabled,
		"fatal":   zerolog.FatalLevel,
	} {
		c.Check(GetLogLevelOrDebug(levelStr), Equals, expected, Commentf("level %s", levelStr))
	}

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	c.Check(GetLogLevelOrDebug("verbose"), Equals, zerolog.DebugLevel)
	c.Check(buf.String(), Matches, "(?s).*Unknown log level 'verbose'.*")
	c.Check(GetLogLevelOrDebug(""), Equals, zerolog.DebugLevel)
}
