package contesttable

// 预置分组名
const (
	GroupABCLatest20Rounds = "abcLatest20Rounds"
	GroupABC319Onwards     = "abc319Onwards"
	GroupABC212ToABC318    = "abc212ToAbc318"
	GroupABC126ToABC211    = "abc126ToAbc211"
	GroupEDPC              = "edpc"
	GroupTDPC              = "tdpc"
	GroupFPS24             = "fps24"
	GroupACLPractice       = "aclPractice"
	GroupTessokuBook       = "tessokuBook"
	GroupJOIFirstQualRound = "joiFirstQualRound"
)

// Group 一组需要同时展示的表格
type Group struct {
	Name        string
	ButtonLabel string
	AriaLabel   string
	providers   []Provider
}

func NewGroup(name, buttonLabel, ariaLabel string, providers ...Provider) *Group {
	return &Group{
		Name:        name,
		ButtonLabel: buttonLabel,
		AriaLabel:   ariaLabel,
		providers:   providers,
	}
}

// Providers 按展示顺序返回
func (g *Group) Providers() []Provider {
	out := make([]Provider, len(g.providers))
	copy(out, g.providers)
	return out
}

func (g *Group) Size() int {
	return len(g.providers)
}

func single(name string, p Provider) *Group {
	m := p.Metadata()
	return NewGroup(name, m.ButtonLabel, m.AriaLabel, p)
}

var groups = []*Group{
	single(GroupABCLatest20Rounds, NewABCLatest20RoundsProvider()),
	single(GroupABC319Onwards, NewABC319OnwardsProvider()),
	single(GroupABC212ToABC318, NewABC212ToABC318Provider()),
	single(GroupABC126ToABC211, NewABC126ToABC211Provider()),
	single(GroupEDPC, NewEDPCProvider()),
	single(GroupTDPC, NewTDPCProvider()),
	single(GroupFPS24, NewFPS24Provider()),
	single(GroupACLPractice, NewACLPracticeProvider()),
	NewGroup(GroupTessokuBook, "鉄則本", "Tessoku book",
		NewTessokuBookProvider(TessokuBookSectionExamples),
		NewTessokuBookProvider(TessokuBookSectionPracticals),
		NewTessokuBookProvider(TessokuBookSectionChallenges),
	),
	single(GroupJOIFirstQualRound, NewJOIFirstQualRoundProvider()),
}

var groupsByName = func() map[string]*Group {
	m := make(map[string]*Group, len(groups))
	for _, g := range groups {
		m[g.Name] = g
	}
	return m
}()

// Groups 按展示顺序返回全部预置分组
func Groups() []*Group {
	out := make([]*Group, len(groups))
	copy(out, groups)
	return out
}

func GroupByName(name string) (*Group, bool) {
	g, ok := groupsByName[name]
	return g, ok
}
