package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/unkn0wn-root/cdkeygen"
	"github.com/unkn0wn-root/cdkeygen/output"
)

type generateRequest struct {
	Count          int    `json:"count" form:"count"`
	Length         int    `json:"length" form:"length"`
	Pattern        string `json:"pattern" form:"pattern"`
	GroupSize      int    `json:"group_size" form:"group_size"`
	Separator      string `json:"separator" form:"separator"`
	Alphabet       string `json:"alphabet" form:"alphabet"`
	AllowAmbiguous bool   `json:"allow_ambiguous" form:"allow_ambiguous"`
	Unique         *bool  `json:"unique" form:"unique"` // nil => true
	Download       string `json:"download" form:"download"`
}

// runWeb serves the browser form: GET / renders it, POST /api/generate
// returns the batch as JSON or, with a download format, as an attachment.
func runWeb(addr string, logger cdkeygen.Logger, zl zerolog.Logger) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(formPage))
	})
	r.POST("/api/generate", handleGenerate(logger))

	zl.Info().Str("addr", addr).Msg("serving key generator form")
	return r.Run(addr)
}

func handleGenerate(logger cdkeygen.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req generateRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cfg := cdkeygen.Config{
			Count:          req.Count,
			Length:         req.Length,
			Pattern:        req.Pattern,
			Alphabet:       req.Alphabet,
			AvoidAmbiguous: !req.AllowAmbiguous,
			Unique:         req.Unique == nil || *req.Unique,
			GroupSize:      req.GroupSize,
			Separator:      req.Separator,
			Uppercase:      true,
		}
		if cfg.Count == 0 {
			cfg.Count = 10
		}
		if cfg.Pattern == "" && cfg.Length == 0 {
			cfg.Length = cdkeygen.DefaultLength
		}

		g, err := cdkeygen.New(cdkeygen.Options{Config: cfg, Logger: logger})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		keys, err := g.Generate()
		if err != nil {
			status := http.StatusInternalServerError
			var capErr *cdkeygen.CapacityError
			if errors.As(err, &capErr) {
				status = http.StatusUnprocessableEntity
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		if req.Download != "" {
			enc, err := output.For(req.Download)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=keys.%s", fileExt(req.Download)))
			c.Header("Content-Type", "application/octet-stream")
			if err := enc.Encode(c.Writer, keys); err != nil {
				_ = c.Error(err)
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"cd_keys": keys})
	}
}

func fileExt(format string) string {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == output.FormatText {
		return "txt"
	}
	return f
}

const formPage = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>CD Key Generator</title>
<style>
body{font-family:system-ui,sans-serif;max-width:640px;margin:2rem auto;padding:0 1rem}
label{display:block;margin:.5rem 0 .1rem}
input[type=text],input[type=number]{width:100%;padding:.3rem;box-sizing:border-box}
pre{background:#f4f4f4;padding:1rem;min-height:12rem;white-space:pre-wrap}
button{margin:.8rem .4rem 0 0;padding:.4rem 1rem}
</style>
</head>
<body>
<h1>CD Key Generator</h1>
<form id="f">
  <label>How many keys?</label><input type="number" name="count" value="100">
  <label>Key length (ignored if pattern used)</label><input type="number" name="length" value="25">
  <label>Pattern (use X = random), optional</label><input type="text" name="pattern" placeholder="XXXXX-XXXXX-XXXXX">
  <label>Group size (0 = none)</label><input type="number" name="group_size" value="5">
  <label>Group separator</label><input type="text" name="separator" value="-">
  <label>Alphabet (leave blank for default)</label><input type="text" name="alphabet">
  <label><input type="checkbox" name="allow_ambiguous"> Allow ambiguous chars (0,O,1,I,L)</label>
  <label><input type="checkbox" name="unique" checked> Unique keys (no duplicates)</label>
  <button type="submit">Generate</button>
  <button type="button" id="save">Download...</button>
</form>
<pre id="keys"></pre>
<script>
var f=document.getElementById('f'),pre=document.getElementById('keys');
function payload(){return{
  count:+f.count.value,length:+f.length.value,pattern:f.pattern.value,
  group_size:+f.group_size.value,separator:f.separator.value,alphabet:f.alphabet.value,
  allow_ambiguous:f.allow_ambiguous.checked,unique:f.unique.checked};}
function post(body){return fetch('/api/generate',{method:'POST',
  headers:{'Content-Type':'application/json'},body:JSON.stringify(body)});}
f.addEventListener('submit',function(e){e.preventDefault();
  post(payload()).then(function(r){return r.json().then(function(d){
    pre.textContent=r.ok?d.cd_keys.join('\n'):'Error: '+d.error;});});});
document.getElementById('save').addEventListener('click',function(){
  var fmt=prompt('Format (text/csv/json)','text');if(!fmt)return;
  var body=payload();body.download=fmt;
  post(body).then(function(r){
    if(!r.ok){r.json().then(function(d){pre.textContent='Error: '+d.error;});return;}
    r.blob().then(function(b){var a=document.createElement('a');
      a.href=URL.createObjectURL(b);
      a.download='keys.'+(fmt==='text'?'txt':fmt);a.click();});});});
</script>
</body>
</html>
`
