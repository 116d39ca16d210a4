package mailchimp

// EmailIdentifier identifies a list member by email address, email unique id
// (euid) or list email id (leid). Only one of the fields is needed.
type EmailIdentifier struct {
	Email string `json:"email,omitempty"`
	EUID  string `json:"euid,omitempty"`
	LEID  string `json:"leid,omitempty"`
}

// RequestError is the error envelope returned by the API.
type RequestError struct {
	Status string `json:"status"`
	Name   string `json:"name"`
	Code   int    `json:"code"`
	Error  string `json:"error"`
}

// CompletedResult is returned by operations that only acknowledge.
type CompletedResult struct {
	Complete bool `json:"complete"`
}

// StatusResult is returned by the users operations.
type StatusResult struct {
	Status string `json:"status"`
}

// SimpleListResult is a page of records with a count.
type SimpleListResult[T any] struct {
	Count int `json:"count"`
	Data  []T `json:"data"`
}

// TotalListResult is a page of records with the total number available.
type TotalListResult[T any] struct {
	Total int `json:"total"`
	Data  []T `json:"data"`
}

// Tracking toggles click and open tracking of a campaign.
type Tracking struct {
	Opens      bool `json:"opens"`
	HTMLClicks bool `json:"html_clicks"`
	TextClicks bool `json:"text_clicks"`
}

// CampaignDetails is a campaign as returned by campaigns/list, create and
// replicate.
type CampaignDetails struct {
	ID             string   `json:"id"`
	WebID          int      `json:"web_id"`
	ListID         string   `json:"list_id"`
	FolderID       int      `json:"folder_id"`
	TemplateID     int      `json:"template_id"`
	ContentType    string   `json:"content_type"`
	Title          string   `json:"title"`
	Type           string   `json:"type"`
	CreateTime     string   `json:"create_time"`
	SendTime       string   `json:"send_time"`
	EmailsSent     int      `json:"emails_sent"`
	Status         string   `json:"status"`
	FromName       string   `json:"from_name"`
	FromEmail      string   `json:"from_email"`
	Subject        string   `json:"subject"`
	ToName         string   `json:"to_name"`
	ArchiveURL     string   `json:"archive_url"`
	InlineCSS      bool     `json:"inline_css"`
	Analytics      string   `json:"analytics"`
	AnalyticsTag   string   `json:"analytics_tag"`
	Authenticate   bool     `json:"authenticate"`
	AutoFooter     bool     `json:"auto_footer"`
	AutoTweet      bool     `json:"auto_tweet"`
	ParentID       string   `json:"parent_id"`
	IsChild        bool     `json:"is_child"`
	TestsRemain    int      `json:"tests_remain"`
	Tracking       Tracking `json:"tracking"`
	SegmentText    string   `json:"segment_text"`
	CommentsTotal  int      `json:"comments_total"`
	CommentsUnread int      `json:"comments_unread"`

	// Untyped in the API.
	SegmentOpts map[string]any `json:"segment_opts,omitempty"`
	TypeOpts    map[string]any `json:"type_opts,omitempty"`
	Summary     any            `json:"summary,omitempty"`
}

// CampaignListError reports a filter campaigns/list could not apply.
type CampaignListError struct {
	Filter string `json:"filter"`
	Value  string `json:"value"`
	Code   int    `json:"code"`
	Error  string `json:"error"`
}

// CampaignListResult is the result of campaigns/list.
type CampaignListResult struct {
	Total  int                 `json:"total"`
	Data   []CampaignDetails   `json:"data"`
	Errors []CampaignListError `json:"errors,omitempty"`
}

// ListStats holds the aggregate counters of a list.
type ListStats struct {
	MemberCount               int     `json:"member_count"`
	UnsubscribeCount          int     `json:"unsubscribe_count"`
	CleanedCount              int     `json:"cleaned_count"`
	MemberCountSinceSend      int     `json:"member_count_since_send"`
	UnsubscribeCountSinceSend int     `json:"unsubscribe_count_since_send"`
	CleanedCountSinceSend     int     `json:"cleaned_count_since_send"`
	CampaignCount             int     `json:"campaign_count"`
	GroupingCount             int     `json:"grouping_count"`
	GroupCount                int     `json:"group_count"`
	MergeVarCount             int     `json:"merge_var_count"`
	AvgSubRate                float64 `json:"avg_sub_rate"`
	AvgUnsubRate              float64 `json:"avg_unsub_rate"`
	TargetSubRate             float64 `json:"target_sub_rate"`
	OpenRate                  float64 `json:"open_rate"`
	ClickRate                 float64 `json:"click_rate"`
}

// ListDetails is a list as returned by lists/list.
type ListDetails struct {
	ID                string    `json:"id"`
	WebID             int       `json:"web_id"`
	Name              string    `json:"name"`
	DateCreated       string    `json:"date_created"`
	EmailTypeOption   bool      `json:"email_type_option"`
	UseAwesomebar     bool      `json:"use_awesomebar"`
	DefaultFromName   string    `json:"default_from_name"`
	DefaultFromEmail  string    `json:"default_from_email"`
	DefaultSubject    string    `json:"default_subject"`
	DefaultLanguage   string    `json:"default_language"`
	ListRating        float64   `json:"list_rating"`
	SubscribeURLShort string    `json:"subscribe_url_short"`
	SubscribeURLLong  string    `json:"subscribe_url_long"`
	BeamerAddress     string    `json:"beamer_address"`
	Visibility        string    `json:"visibility"`
	Stats             ListStats `json:"stats"`
}

// ListListResult is the result of lists/list.
type ListListResult = TotalListResult[ListDetails]

// MemberDetails is a list member as returned by lists/member-info and the
// report operations.
type MemberDetails struct {
	ID              string         `json:"id"`
	Email           string         `json:"email"`
	EmailType       string         `json:"email_type"`
	Merges          map[string]any `json:"merges,omitempty"`
	Status          string         `json:"status"`
	IPSignup        string         `json:"ip_signup"`
	TimestampSignup string         `json:"timestamp_signup"`
	IPOpt           string         `json:"ip_opt"`
	TimestampOpt    string         `json:"timestamp_opt"`
	MemberRating    int            `json:"member_rating"`
	CampaignID      string         `json:"campaign_id"`
	Timestamp       string         `json:"timestamp"`
	InfoChanged     string         `json:"info_changed"`
	WebID           int            `json:"web_id"`
	LEID            int            `json:"leid"`
	ListID          string         `json:"list_id"`
	ListName        string         `json:"list_name"`
	Language        string         `json:"language"`
	IsGoldenMonkey  bool           `json:"is_gmonkey"`
}

// SubscribeParams are the params of lists/subscribe. MergeVars is free-form;
// FNAME and LNAME are the usual tags.
type SubscribeParams struct {
	ID               string          `json:"id"`
	Email            EmailIdentifier `json:"email"`
	MergeVars        map[string]any  `json:"merge_vars,omitempty"`
	EmailType        string          `json:"email_type,omitempty"`
	DoubleOptin      *bool           `json:"double_optin,omitempty"`
	UpdateExisting   *bool           `json:"update_existing,omitempty"`
	ReplaceInterests *bool           `json:"replace_interests,omitempty"`
	SendWelcome      *bool           `json:"send_welcome,omitempty"`
}

// CampaignListFilters narrows campaigns/list.
type CampaignListFilters struct {
	CampaignID string `json:"campaign_id,omitempty"`
	ListID     string `json:"list_id,omitempty"`
	FolderID   string `json:"folder_id,omitempty"`
	Status     string `json:"status,omitempty"`
	Type       string `json:"type,omitempty"`
	Title      string `json:"title,omitempty"`
	Subject    string `json:"subject,omitempty"`
	Exact      *bool  `json:"exact,omitempty"`
}

// CampaignListParams are the params of campaigns/list.
type CampaignListParams struct {
	Start     int                  `json:"start,omitempty"`
	Limit     int                  `json:"limit,omitempty"`
	SortField string               `json:"sort_field,omitempty"`
	SortDir   string               `json:"sort_dir,omitempty"`
	Filters   *CampaignListFilters `json:"filters,omitempty"`
}

// ListMembersOptions pages and sorts lists/members.
type ListMembersOptions struct {
	Start     int    `json:"start,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	SortField string `json:"sort_field,omitempty"`
	SortDir   string `json:"sort_dir,omitempty"`
}

// ListMembersParams are the params of lists/members.
type ListMembersParams struct {
	ID     string              `json:"id"`
	Status string              `json:"status,omitempty"`
	Opts   *ListMembersOptions `json:"opts,omitempty"`
}

// WebhookActions selects the events a list webhook fires for.
type WebhookActions struct {
	Subscribe   *bool `json:"subscribe,omitempty"`
	Unsubscribe *bool `json:"unsubscribe,omitempty"`
	Profile     *bool `json:"profile,omitempty"`
	Cleaned     *bool `json:"cleaned,omitempty"`
	UpEmail     *bool `json:"upemail,omitempty"`
	Campaign    *bool `json:"campaign,omitempty"`
}

// WebhookSources selects which change origins fire a list webhook.
type WebhookSources struct {
	User  *bool `json:"user,omitempty"`
	Admin *bool `json:"admin,omitempty"`
	API   *bool `json:"api,omitempty"`
}

// WebhookAddParams are the params of lists/webhook-add.
type WebhookAddParams struct {
	ID      string          `json:"id"`
	URL     string          `json:"url"`
	Actions *WebhookActions `json:"actions,omitempty"`
	Sources *WebhookSources `json:"sources,omitempty"`
}

// WebhookAddResult is the result of lists/webhook-add.
type WebhookAddResult struct {
	ID int `json:"id"`
}
