package members

import (
	"carehub-service/internal/app/contracts"
	"carehub-service/internal/app/models"
	"carehub-service/internal/pkg/constvars"
	"carehub-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
)

const resourceMember = "Member"

type memberClient struct {
	BaseUrl string
}

func NewMemberClient(memberServiceBaseUrl string) contracts.MemberClient {
	return &memberClient{
		BaseUrl: memberServiceBaseUrl,
	}
}

func (c *memberClient) FindMemberByID(ctx context.Context, memberID string) (*models.Member, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/%s", c.BaseUrl, memberID), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrSendHTTPRequest(fmt.Errorf("unexpected status code %d", resp.StatusCode))
	}

	member := new(models.Member)
	err = json.NewDecoder(resp.Body).Decode(&member)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resourceMember)
	}

	return member, nil
}
