package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFunctions_Python(t *testing.T) {
	diff := `diff --git a/src/config.py b/src/config.py
+++ b/src/config.py
+def parse_config(path):
+async def load_remote(url):
`
	functions := ExtractFunctions(diff)

	assert.Equal(t, []string{"load_remote", "parse_config"}, functions)
}

func TestExtractFunctions_JavaScript(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"function declaration", "+function renderPage(props) {", "renderPage"},
		{"async function", "+async function fetchUsers() {", "fetchUsers"},
		{"const arrow binding", "+const handleClick = (event) => {", "handleClick"},
		{"const async arrow", "+const loadAll = async () => {", "loadAll"},
		{"const function expression", "+const format = function (value) {", "format"},
		{"method shorthand", "+  onSave: (data) => {", "onSave"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []string{tt.want}, ExtractFunctions(tt.line))
		})
	}
}

func TestExtractFunctions_Java(t *testing.T) {
	diff := `+    public void processOrder(Order order) {
+    private String formatName(String raw) {
+    static int countItems(List<Item> items) {
`
	functions := ExtractFunctions(diff)

	assert.Contains(t, functions, "processOrder")
	assert.Contains(t, functions, "formatName")
	assert.Contains(t, functions, "countItems")
}

func TestExtractFunctions_C(t *testing.T) {
	diff := "+static unsigned long hash_key(const char *key)\n"
	functions := ExtractFunctions(diff)

	assert.Contains(t, functions, "hash_key")
}

func TestExtractFunctions_OnlyAddedLines(t *testing.T) {
	diff := `-def removed_function(x):
 def context_function(y):
+++ b/src/thing.py
+def added_function(z):
`
	functions := ExtractFunctions(diff)

	assert.Equal(t, []string{"added_function"}, functions)
}

func TestExtractFunctions_FirstPatternWins(t *testing.T) {
	// "def name(" satisfies both the python pattern and the permissive
	// fallback; only the python pattern may contribute
	functions := ExtractFunctions("+def compute(x):")

	assert.Equal(t, []string{"compute"}, functions)
}

func TestExtractFunctions_Deduplicated(t *testing.T) {
	diff := "+def shared_name(a):\n+def shared_name(b):\n"
	functions := ExtractFunctions(diff)

	assert.Equal(t, []string{"shared_name"}, functions)
}

func TestExtractFunctions_EmptyDiff(t *testing.T) {
	assert.Empty(t, ExtractFunctions(""))
	assert.Empty(t, ExtractFunctions("no added lines here"))
}

func TestExtractFunctions_Idempotent(t *testing.T) {
	diff := "+def once(a):\n+function twice(b) {\n"

	assert.Equal(t, ExtractFunctions(diff), ExtractFunctions(diff))
}
