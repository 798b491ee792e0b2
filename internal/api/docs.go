package api

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openapiSpec []byte

const docsPage = `<!DOCTYPE html>
<html>
<head>
  <title>jobscout API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({url: "/openapi.json", dom_id: "#swagger-ui"});
  </script>
</body>
</html>`

func (s *Server) openapiYAML(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml", openapiSpec)
}

func (s *Server) openapiJSON(c *gin.Context) {
	var spec map[string]any
	if err := yaml.Unmarshal(openapiSpec, &spec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid embedded spec: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, spec)
}

func (s *Server) docs(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(docsPage))
}
