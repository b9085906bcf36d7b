package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qlquery/qlquery/graph"
	"github.com/qlquery/qlquery/library"
	"github.com/qlquery/qlquery/query"
	"github.com/qlquery/qlquery/utils"
)

type queryParams struct {
	// Query string, empty query matches everything
	Query string
	// Tags for free text search, defaults to configured search tags
	Star []string
}

type queryResponse struct {
	Query      string
	Type       query.Type
	Valid      bool
	Parsable   bool
	MatchesAll bool
	Validator  *bool
	Star       []string
	Error      string `json:",omitempty"`
}

// parseQuery parses query with context options, cached unless star is overridden
func parseQuery(params queryParams) (*query.Query, error) {
	var q *query.Query

	star := utils.NormalizeTags(params.Star)
	if len(star) > 0 {
		opts := append(append([]query.Option(nil), context.QueryOptions()...), query.WithStar(star))
		q = query.New(params.Query, opts...)
	} else {
		cache, err := context.QueryCache()
		if err != nil {
			return nil, err
		}
		q = cache.Get(params.Query)
	}

	queriesByTypeCounter.WithLabelValues(q.Type().String()).Inc()

	return q, nil
}

func describeQuery(q *query.Query) queryResponse {
	response := queryResponse{
		Query:      q.Source(),
		Type:       q.Type(),
		Valid:      q.Valid(),
		Parsable:   q.IsParsable(),
		MatchesAll: q.MatchesAll(),
		Validator:  q.Validator(),
		Star:       q.Star(),
	}

	if !q.IsParsable() {
		if _, err := query.Parse(q.Source(), context.QueryOptions()...); err != nil {
			response.Error = err.Error()
		}
	}

	return response
}

// @Summary Validate query
// @Description Classify query as VALID, TEXT or INVALID, with error position for invalid ones.
// @Tags Queries
// @Consume json
// @Produce json
// @Param request body queryParams true "Query to validate"
// @Success 200 {object} queryResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /api/query/validate [post]
func apiQueryValidate(c *gin.Context) {
	var b queryParams

	if c.Bind(&b) != nil {
		return
	}

	q, err := parseQuery(b)
	if err != nil {
		AbortWithJSONError(c, 500, err)
		return
	}

	c.JSON(200, describeQuery(q))
}

// @Summary Explain query
// @Description Describe query along with its representation and the tree of matchers it was compiled into.
// @Tags Queries
// @Consume json
// @Produce json
// @Param request body queryParams true "Query to explain"
// @Success 200 {object} map[string]interface{} "Query, Repr and Matcher"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /api/query/explain [post]
func apiQueryExplain(c *gin.Context) {
	var b queryParams

	if c.Bind(&b) != nil {
		return
	}

	q, err := parseQuery(b)
	if err != nil {
		AbortWithJSONError(c, 500, err)
		return
	}

	c.JSON(200, gin.H{
		"Query":   describeQuery(q),
		"Repr":    q.String(),
		"Matcher": q.Matcher().String(),
	})
}

type filterParams struct {
	queryParams
	// Records to filter, library from config is filtered if missing
	Records []map[string]interface{}
	// Only count matching records
	Count bool
}

// @Summary Filter records
// @Description Filter records with the query. Records from the request are filtered, or the library from config if none are given.
// @Tags Queries
// @Consume json
// @Produce json
// @Param request body filterParams true "Query and records"
// @Success 200 {object} map[string]interface{} "Query, Total, Count and matching Records"
// @Failure 400 {object} map[string]string "Invalid query or record"
// @Failure 413 {object} map[string]string "Too many records"
// @Router /api/query/filter [post]
func apiQueryFilter(c *gin.Context) {
	var b filterParams

	if c.Bind(&b) != nil {
		return
	}

	q, err := parseQuery(b.queryParams)
	if err != nil {
		AbortWithJSONError(c, 500, err)
		return
	}

	if !q.IsParsable() {
		AbortWithJSONError(c, 400, fmt.Errorf("invalid query: %s", describeQuery(q).Error))
		return
	}

	var collection *library.Collection

	if b.Records != nil {
		maxRecords := context.Config().APIMaxRecords
		if maxRecords > 0 && len(b.Records) > maxRecords {
			AbortWithJSONError(c, 413, fmt.Errorf("too many records: %d, limit is %d", len(b.Records), maxRecords))
			return
		}

		collection = library.NewCollection()
		for i, fields := range b.Records {
			song, err := library.NewSong(fields)
			if err != nil {
				AbortWithJSONError(c, 400, fmt.Errorf("record #%d: %s", i, err))
				return
			}
			collection.Add(song)
		}
	} else {
		collection, err = context.Collection()
		if err != nil {
			AbortWithJSONError(c, 500, err)
			return
		}
	}

	result := collection.Filter(q.Matcher())
	recordsMatchedCounter.Add(float64(len(result)))

	response := gin.H{
		"Query": describeQuery(q),
		"Total": collection.Len(),
		"Count": len(result),
	}
	if !b.Count {
		response["Records"] = result
	}

	c.JSON(200, response)
}

// @Summary Query graph
// @Description Render matcher tree of the query as graphviz graph.
// @Tags Queries
// @Produce text/vnd.graphviz
// @Param q query string false "query"
// @Param layout query string false "horizontal (default) or vertical"
// @Success 200 {string} string "graph in dot format"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /api/query/graph [get]
func apiQueryGraph(c *gin.Context) {
	q, err := parseQuery(queryParams{Query: c.Query("q")})
	if err != nil {
		AbortWithJSONError(c, 500, err)
		return
	}

	g, err := graph.BuildGraph(q.Matcher(), c.DefaultQuery("layout", "horizontal"))
	if err != nil {
		AbortWithJSONError(c, 400, err)
		return
	}

	c.Data(http.StatusOK, "text/vnd.graphviz; charset=utf-8", []byte(g.String()))
}
