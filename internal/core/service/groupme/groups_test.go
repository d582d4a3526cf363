package groupme

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gm-bridge-bot/internal/core/errs"
)

func groupsServer(t *testing.T, pages ...string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		for i, body := range pages {
			if page == fmt.Sprint(i+1) {
				fmt.Fprintf(w, `{"response":%s}`, body)
				return
			}
		}
		fmt.Fprint(w, `{"response":[]}`)
	}))
}

func TestGroups_Paginates(t *testing.T) {
	server := groupsServer(t,
		`[{"id":"1","name":"Alpha"},{"id":"2","name":"Beta"}]`,
		`[{"id":"3","name":"Gamma"}]`,
	)
	defer server.Close()

	client := newTestClient(server)
	groups, err := client.Groups()

	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "Gamma", groups[2].Name)
	assert.Equal(t, "0", groups[0].LastMessageID)
}

func TestGroupByName(t *testing.T) {
	server := groupsServer(t, `[{"id":"1","name":"Alpha"},{"id":"2","name":"Beta"}]`)
	defer server.Close()

	client := newTestClient(server)
	link, err := client.GroupByName("Beta")

	require.NoError(t, err)
	assert.Equal(t, "2", link.ID)
}

func TestGroupByName_NotFound(t *testing.T) {
	server := groupsServer(t, `[{"id":"1","name":"Alpha"}]`)
	defer server.Close()

	client := newTestClient(server)
	_, err := client.GroupByName("Omega")

	require.Error(t, err)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestGroupByName_Ambiguous(t *testing.T) {
	server := groupsServer(t, `[{"id":"1","name":"Alpha"},{"id":"2","name":"Alpha"}]`)
	defer server.Close()

	client := newTestClient(server)
	_, err := client.GroupByName("Alpha")

	require.Error(t, err)
	assert.Equal(t, errs.KindTooMany, errs.KindOf(err))
}
