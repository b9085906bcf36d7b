// Package context provides single entry to all resources
package context

import (
	gocontext "context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"sort"
	"sync"

	"github.com/qlquery/qlquery/console"
	"github.com/qlquery/qlquery/http"
	"github.com/qlquery/qlquery/library"
	"github.com/qlquery/qlquery/plugins"
	"github.com/qlquery/qlquery/qlquery"
	"github.com/qlquery/qlquery/query"
	"github.com/qlquery/qlquery/utils"
	"github.com/rs/zerolog/log"
	"github.com/smira/commander"
	"github.com/smira/flag"
)

// QLContext is a common context shared by all commands
type QLContext struct {
	sync.Mutex

	gocontext.Context

	flags, globalFlags *flag.FlagSet
	configLoaded       bool

	progress   qlquery.Progress
	downloader qlquery.Downloader
	plugins    *plugins.Registry
	queryOpts  []query.Option
	queryCache *query.Cache
	collection *library.Collection
	// Debug features
	fileCPUProfile *os.File
	fileMemProfile *os.File
}

// FatalError is type for panicking to abort execution with non-zero
// exit code and print meaningful explanation
type FatalError struct {
	ReturnCode int
	Message    string
}

// Fatal panics and aborts execution with exit code 1
func Fatal(err error) {
	returnCode := 1
	if err == commander.ErrFlagError || err == commander.ErrCommandError {
		returnCode = 2
	}
	panic(&FatalError{ReturnCode: returnCode, Message: err.Error()})
}

// Config loads and returns current configuration
func (context *QLContext) Config() *utils.ConfigStructure {
	context.Lock()
	defer context.Unlock()

	return context.config()
}

func (context *QLContext) config() *utils.ConfigStructure {
	if !context.configLoaded {
		var err error

		configLocation := context.globalFlags.Lookup("config").Value.String()
		if configLocation != "" {
			err = utils.LoadConfig(configLocation, &utils.Config)

			if err != nil {
				Fatal(err)
			}
		} else {
			configLocations := utils.ConfigLocations()

			for _, configLocation := range configLocations {
				err = utils.LoadConfig(configLocation, &utils.Config)
				if err == nil {
					break
				}
				if !os.IsNotExist(err) {
					Fatal(fmt.Errorf("error loading config file %s: %s", configLocation, err))
				}
			}

			if err != nil {
				fmt.Fprintf(os.Stderr, "Config file not found, creating default config at %s\n\n", configLocations[0])
				if err = utils.SaveConfig(configLocations[0], &utils.Config); err != nil {
					log.Warn().Err(err).Msg("unable to save default config")
				}
			}
		}

		utils.SetupLogger(utils.Config.LogLevel, utils.Config.LogFormat)

		context.configLoaded = true
	}
	return &utils.Config
}

// LookupOption checks boolean flag with default (usually config) and command-line
// setting
func (context *QLContext) LookupOption(defaultValue bool, name string) (result bool) {
	context.Lock()
	defer context.Unlock()

	result = defaultValue

	if context.globalFlags.IsSet(name) {
		result = context.globalFlags.Lookup(name).Value.Get().(bool)
	}

	return
}

// Progress creates or returns Progress object
func (context *QLContext) Progress() qlquery.Progress {
	context.Lock()
	defer context.Unlock()

	return context._progress()
}

func (context *QLContext) _progress() qlquery.Progress {
	if context.progress == nil {
		context.progress = console.NewProgress()
		context.progress.Start()
	}

	return context.progress
}

// Reporter returns result reporter printing to progress
func (context *QLContext) Reporter() qlquery.ResultReporter {
	return &qlquery.ConsoleResultReporter{Progress: context.Progress()}
}

// Downloader returns instance of current downloader
func (context *QLContext) Downloader() qlquery.Downloader {
	context.Lock()
	defer context.Unlock()

	if context.downloader == nil {
		config := context.config()
		context.downloader = http.NewGrabDownloader(config.DownloadSpeedLimit, config.DownloadRetries+1, context._progress())
	}

	return context.downloader
}

// SearchTags returns tags for free text search: -star flag, config or defaults
func (context *QLContext) SearchTags() []string {
	context.Lock()
	defer context.Unlock()

	return context.searchTags()
}

func (context *QLContext) searchTags() []string {
	star := utils.NormalizeTags(context.config().SearchTags)

	if starFlag := context.flags.Lookup("star"); starFlag != nil && starFlag.Value.String() != "" {
		star = utils.NormalizeTags(splitList(starFlag.Value.String()))
	}

	if len(star) == 0 {
		return query.DefaultStar
	}
	return star
}

// QueryOptions returns options to parse queries with: search tags, ignored characters
// and plugins (with saved searches from config)
func (context *QLContext) QueryOptions() []query.Option {
	context.Lock()
	defer context.Unlock()

	return context.queryOptions()
}

func (context *QLContext) queryOptions() []query.Option {
	if context.queryOpts == nil {
		config := context.config()

		opts := []query.Option{
			query.WithStar(context.searchTags()),
			query.WithIgnoredCharacters(config.IgnoredCharacters),
		}

		context.plugins = plugins.Default(config.SavedSearches, opts...)
		for _, name := range config.DisabledPlugins {
			context.plugins.Unregister(name)
		}
		context.queryOpts = append(opts, query.WithPlugins(context.plugins))

		names := make([]string, 0, len(config.SavedSearches))
		for name := range config.SavedSearches {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			if typ := query.GetType(config.SavedSearches[name], context.queryOpts...); typ != query.Valid {
				log.Warn().Str("search", name).Stringer("type", typ).Msg("saved search is not a valid query")
			}
		}
	}

	return context.queryOpts
}

// Plugins returns registry of query extensions
func (context *QLContext) Plugins() *plugins.Registry {
	context.Lock()
	defer context.Unlock()

	context.queryOptions()
	return context.plugins
}

// QueryCache returns cache of parsed queries, sized from config
func (context *QLContext) QueryCache() (*query.Cache, error) {
	context.Lock()
	defer context.Unlock()

	if context.queryCache == nil {
		var err error

		context.queryCache, err = query.NewCache(context.config().QueryCacheSize, context.queryOptions()...)
		if err != nil {
			return nil, err
		}
	}

	return context.queryCache, nil
}

// NewQuery parses query with context options
func (context *QLContext) NewQuery(s string) *query.Query {
	return query.New(s, context.QueryOptions()...)
}

// LoadCollection loads record dumps from locations (files, directories or
// http(s)/ftp URLs of dump files)
func (context *QLContext) LoadCollection(locations []string) (*library.Collection, error) {
	reporter := context.Reporter()

	var failedFiles []string
	localLocations := make([]string, 0, len(locations))

	for _, location := range locations {
		if !http.IsRemote(location) {
			localLocations = append(localLocations, location)
			continue
		}

		filename, cleanup, err := http.DownloadTemp(context, context.Downloader(), location)
		if err != nil {
			reporter.Warning("Unable to download %s: %s", location, err)
			failedFiles = append(failedFiles, location)
			continue
		}
		defer cleanup()

		localLocations = append(localLocations, filename)
	}

	dumpFiles, failed := library.CollectDumpFiles(localLocations, reporter)
	failedFiles = append(failedFiles, failed...)

	collection := library.NewCollection()
	failedFiles = append(failedFiles, library.LoadDumpFiles(collection, dumpFiles, reporter)...)

	if len(failedFiles) > 0 {
		return collection, fmt.Errorf("some files failed to be loaded: %v", failedFiles)
	}

	log.Debug().Int("records", collection.Len()).Int("files", len(dumpFiles)).Msg("loaded records")
	return collection, nil
}

// Collection returns records loaded from library paths in config
func (context *QLContext) Collection() (*library.Collection, error) {
	context.Lock()
	libraryPaths := context.config().LibraryPaths
	collection := context.collection
	context.Unlock()

	if collection != nil {
		return collection, nil
	}

	collection, err := context.LoadCollection(libraryPaths)
	if err != nil {
		return nil, err
	}

	context.Lock()
	defer context.Unlock()

	if context.collection == nil {
		context.collection = collection
	}
	return context.collection, nil
}

// UpdateFlags sets internal copy of flags in the context
func (context *QLContext) UpdateFlags(flags *flag.FlagSet) {
	context.Lock()
	defer context.Unlock()

	context.flags = flags
	// -star might have changed
	context.queryOpts = nil
	context.queryCache = nil
}

// Flags returns current command flags
func (context *QLContext) Flags() *flag.FlagSet {
	context.Lock()
	defer context.Unlock()

	return context.flags
}

// GlobalFlags returns flags passed to all commands
func (context *QLContext) GlobalFlags() *flag.FlagSet {
	context.Lock()
	defer context.Unlock()

	return context.globalFlags
}

// GoContextHandleSignals upgrades context to handle ^C by aborting context
func (context *QLContext) GoContextHandleSignals() {
	context.Lock()
	defer context.Unlock()

	// Catch ^C
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)

	var cancel gocontext.CancelFunc

	context.Context, cancel = gocontext.WithCancel(context.Context)

	go func() {
		<-sigch
		signal.Stop(sigch)
		context.Progress().PrintfStdErr("Aborting... press ^C once again to abort immediately\n")
		cancel()
	}()
}

// Shutdown shuts context down
func (context *QLContext) Shutdown() {
	context.Lock()
	defer context.Unlock()

	if qlquery.EnableDebug {
		if context.fileMemProfile != nil {
			_ = pprof.WriteHeapProfile(context.fileMemProfile)
			_ = context.fileMemProfile.Close()
			context.fileMemProfile = nil
		}
		if context.fileCPUProfile != nil {
			pprof.StopCPUProfile()
			_ = context.fileCPUProfile.Close()
			context.fileCPUProfile = nil
		}
	}
	if context.progress != nil {
		context.progress.Shutdown()
		context.progress = nil
	}
	context.downloader = nil
}

// Cleanup does partial shutdown of context
func (context *QLContext) Cleanup() {
	context.Lock()
	defer context.Unlock()

	if context.progress != nil {
		context.progress.Shutdown()
		context.progress = nil
	}
	context.downloader = nil
}

// NewContext initializes context with default settings
func NewContext(flags *flag.FlagSet) (*QLContext, error) {
	var err error

	context := &QLContext{
		flags:       flags,
		globalFlags: flags,
		Context:     gocontext.TODO(),
	}

	if qlquery.EnableDebug {
		if cpuprofile := flags.Lookup("cpuprofile"); cpuprofile != nil && cpuprofile.Value.String() != "" {
			context.fileCPUProfile, err = os.Create(cpuprofile.Value.String())
			if err != nil {
				return nil, err
			}
			if err = pprof.StartCPUProfile(context.fileCPUProfile); err != nil {
				return nil, err
			}
		}

		if memprofile := flags.Lookup("memprofile"); memprofile != nil && memprofile.Value.String() != "" {
			context.fileMemProfile, err = os.Create(memprofile.Value.String())
			if err != nil {
				return nil, err
			}
		}
	}

	return context, nil
}
