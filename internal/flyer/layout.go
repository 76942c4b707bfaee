package flyer

// FontRole names one of the three embeddable font slots.
type FontRole string

const (
	RoleBody    FontRole = "body"
	RoleDisplay FontRole = "display"
	RoleScript  FontRole = "script"
)

// RoleAssignment maps each text element of the generative template onto a
// font role.
type RoleAssignment struct {
	Invite  FontRole
	Title   FontRole
	Tagline FontRole
	Ribbon  FontRole
	Detail  FontRole
	Closing FontRole
}

// LayoutProfile is the fixed per-decor-kind record governing the generative
// template: alignment, sizes, ribbon presentation, and font-role assignments.
// Profiles are data, never computed.
type LayoutProfile struct {
	TitleAlign  Align
	DetailAlign Align

	InviteSize  float64
	TitleSize   float64
	TaglineSize float64
	DetailSize  float64
	ClosingSize float64

	TitleUppercase bool
	TaglineAccent  bool
	RibbonBanner   bool // banner strip instead of a pill

	Roles RoleAssignment

	BrandMarkSize float64
}

var defaultRoles = RoleAssignment{
	Invite:  RoleScript,
	Title:   RoleDisplay,
	Tagline: RoleScript,
	Ribbon:  RoleBody,
	Detail:  RoleBody,
	Closing: RoleScript,
}

var profiles = map[DecorKind]LayoutProfile{
	KindWinter: {
		TitleAlign: AlignCenter, DetailAlign: AlignCenter,
		InviteSize: 34, TitleSize: 104, TaglineSize: 40, DetailSize: 30, ClosingSize: 32,
		TaglineAccent: true, Roles: defaultRoles, BrandMarkSize: 64,
	},
	KindCarpet: {
		TitleAlign: AlignCenter, DetailAlign: AlignCenter,
		InviteSize: 32, TitleSize: 110, TaglineSize: 38, DetailSize: 30, ClosingSize: 30,
		TitleUppercase: true, TaglineAccent: true, RibbonBanner: true,
		Roles: defaultRoles, BrandMarkSize: 60,
	},
	KindEid: {
		TitleAlign: AlignCenter, DetailAlign: AlignCenter,
		InviteSize: 34, TitleSize: 100, TaglineSize: 42, DetailSize: 30, ClosingSize: 34,
		TaglineAccent: true, Roles: defaultRoles, BrandMarkSize: 64,
	},
	KindDesi: {
		TitleAlign: AlignCenter, DetailAlign: AlignCenter,
		InviteSize: 34, TitleSize: 106, TaglineSize: 40, DetailSize: 31, ClosingSize: 32,
		TaglineAccent: true, RibbonBanner: true, Roles: defaultRoles, BrandMarkSize: 68,
	},
	KindGarden: {
		TitleAlign: AlignLeft, DetailAlign: AlignLeft,
		InviteSize: 32, TitleSize: 96, TaglineSize: 40, DetailSize: 29, ClosingSize: 32,
		Roles: RoleAssignment{
			Invite: RoleScript, Title: RoleScript, Tagline: RoleBody,
			Ribbon: RoleBody, Detail: RoleBody, Closing: RoleScript,
		},
		BrandMarkSize: 56,
	},
	KindTropical: {
		TitleAlign: AlignCenter, DetailAlign: AlignCenter,
		InviteSize: 32, TitleSize: 108, TaglineSize: 38, DetailSize: 30, ClosingSize: 30,
		TitleUppercase: true, RibbonBanner: true, Roles: defaultRoles, BrandMarkSize: 60,
	},
	KindCelestial: {
		TitleAlign: AlignCenter, DetailAlign: AlignCenter,
		InviteSize: 34, TitleSize: 100, TaglineSize: 42, DetailSize: 29, ClosingSize: 34,
		TaglineAccent: true, Roles: defaultRoles, BrandMarkSize: 62,
	},
	KindNeon: {
		TitleAlign: AlignCenter, DetailAlign: AlignCenter,
		InviteSize: 30, TitleSize: 112, TaglineSize: 36, DetailSize: 30, ClosingSize: 28,
		TitleUppercase: true, TaglineAccent: true, RibbonBanner: true,
		Roles: RoleAssignment{
			Invite: RoleBody, Title: RoleDisplay, Tagline: RoleBody,
			Ribbon: RoleBody, Detail: RoleBody, Closing: RoleBody,
		},
		BrandMarkSize: 56,
	},
	KindRoyal: {
		TitleAlign: AlignCenter, DetailAlign: AlignCenter,
		InviteSize: 34, TitleSize: 104, TaglineSize: 40, DetailSize: 30, ClosingSize: 34,
		TitleUppercase: true, TaglineAccent: true, Roles: defaultRoles, BrandMarkSize: 68,
	},
	KindAutumn: {
		TitleAlign: AlignLeft, DetailAlign: AlignLeft,
		InviteSize: 32, TitleSize: 98, TaglineSize: 40, DetailSize: 30, ClosingSize: 32,
		TaglineAccent: true, Roles: defaultRoles, BrandMarkSize: 60,
	},
	KindSpooky: {
		TitleAlign: AlignCenter, DetailAlign: AlignCenter,
		InviteSize: 32, TitleSize: 106, TaglineSize: 38, DetailSize: 30, ClosingSize: 30,
		TitleUppercase: true, RibbonBanner: true, Roles: defaultRoles, BrandMarkSize: 58,
	},
	KindFloralLilac: {
		TitleAlign: AlignCenter, DetailAlign: AlignCenter,
		InviteSize: 34, TitleSize: 96, TaglineSize: 44, DetailSize: 29, ClosingSize: 34,
		Roles: RoleAssignment{
			Invite: RoleScript, Title: RoleDisplay, Tagline: RoleScript,
			Ribbon: RoleBody, Detail: RoleBody, Closing: RoleScript,
		},
		BrandMarkSize: 58,
	},
	KindMarbleGeo: {
		TitleAlign: AlignLeft, DetailAlign: AlignLeft,
		InviteSize: 28, TitleSize: 94, TaglineSize: 34, DetailSize: 28, ClosingSize: 28,
		TitleUppercase: true,
		Roles: RoleAssignment{
			Invite: RoleBody, Title: RoleBody, Tagline: RoleBody,
			Ribbon: RoleBody, Detail: RoleBody, Closing: RoleBody,
		},
		BrandMarkSize: 52,
	},
	KindBlackGold: {
		TitleAlign: AlignCenter, DetailAlign: AlignCenter,
		InviteSize: 34, TitleSize: 108, TaglineSize: 40, DetailSize: 30, ClosingSize: 34,
		TitleUppercase: true, TaglineAccent: true, Roles: defaultRoles, BrandMarkSize: 66,
	},
	KindBlueArch: {
		TitleAlign: AlignCenter, DetailAlign: AlignCenter,
		InviteSize: 34, TitleSize: 100, TaglineSize: 42, DetailSize: 30, ClosingSize: 34,
		TaglineAccent: true, Roles: defaultRoles, BrandMarkSize: 62,
	},
	KindMintVintage: {
		TitleAlign: AlignCenter, DetailAlign: AlignCenter,
		InviteSize: 32, TitleSize: 92, TaglineSize: 44, DetailSize: 28, ClosingSize: 32,
		RibbonBanner: true, Roles: defaultRoles, BrandMarkSize: 56,
	},
	KindGeneric: {
		TitleAlign: AlignCenter, DetailAlign: AlignCenter,
		InviteSize: 32, TitleSize: 100, TaglineSize: 40, DetailSize: 30, ClosingSize: 32,
		TaglineAccent: true, Roles: defaultRoles, BrandMarkSize: 60,
	},
}

// ProfileFor returns the layout profile for a decor kind. Unknown kinds get
// the generic profile.
func ProfileFor(kind DecorKind) LayoutProfile {
	if p, ok := profiles[kind]; ok {
		return p
	}
	return profiles[KindGeneric]
}
