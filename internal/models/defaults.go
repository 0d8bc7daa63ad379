package models

import "time"

// Compiled-in default datasets. Every accessor builds fresh values on each
// call, so callers always receive an independent deep copy and can mutate it
// freely without corrupting the fallback for later callers.

// defaultEpoch anchors the CreatedAt stamps of the built-in datasets, so a
// defaults reload yields identical values on every call.
var defaultEpoch = time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC)

func daysAgo(n int) int64 {
	return defaultEpoch.AddDate(0, 0, -n).UnixMilli()
}

// DefaultStory returns the built-in story timeline.
func DefaultStory() []StoryEntry {
	return []StoryEntry{
		{ID: "story_1", Date: "2025.10.11", Content: "我们在青藤相识。", CreatedAt: daysAgo(100)},
		{ID: "story_2", Date: "2025.10.20", Content: "我们添加了微信，开始产生现实的交集。", CreatedAt: daysAgo(80)},
		{ID: "story_3", Date: "2025.11.01", Content: "我们第一次约会，相处得非常融洽，为了变得更好我决定去改变造型。", CreatedAt: daysAgo(60)},
		{ID: "story_4", Date: "2025.11.09", Content: "我们第二次约会，带着新造型前去并得到了夸奖，我因自己在慢慢变得更好而感到开心。", CreatedAt: daysAgo(40)},
		{ID: "story_5", Date: "2025.11.10", Content: "你告诉我睡不好是我的原因，我感到很惶恐，好在短暂的讨论后我们仍然决定再向前走看看。", CreatedAt: daysAgo(0)},
		{ID: "story_6", Date: "2025.11.23", Content: "我们第三次约会，在聊天中我真正有了你想要理解我的感觉，因此我也下定了决心。", CreatedAt: daysAgo(0)},
		{ID: "story_7", Date: "2025.11.24", Content: "聊天中的“我也好想让你一直纯开心”击中了我的心，那一刻我觉得自己什么都做得到。", CreatedAt: daysAgo(0)},
		{ID: "story_8", Date: "2025.11.29", Content: "我们第四次约会，拜访女孩子家和观看互动剧场都是我的初体验，我怀着激动的心情不断畅想未来。", CreatedAt: daysAgo(0)},
		{ID: "story_9", Date: "直到现在", Content: "未完待续，我希望能永远未完待续……", CreatedAt: daysAgo(0)},
	}
}

// DefaultMemory returns the built-in memory gallery.
func DefaultMemory() []MemoryEntry {
	return []MemoryEntry{
		{ID: "memory_1", Caption: "第一次一起做手工", Date: "2025.11.23", CreatedAt: daysAgo(100)},
		{ID: "memory_2", Caption: "第一次一起去看剧场", Date: "2025.11.29", CreatedAt: daysAgo(80)},
		{ID: "memory_3", Caption: "第一次——", Date: "20--.--.--", CreatedAt: daysAgo(60)},
		{ID: "memory_4", Caption: "第一次——", Date: "20--.--.--", CreatedAt: daysAgo(40)},
		{ID: "memory_5", Caption: "第一次——", Date: "20--.--.--", CreatedAt: daysAgo(40)},
		{ID: "memory_6", Caption: "第一次——", Date: "20--.--.--", CreatedAt: daysAgo(40)},
	}
}

// DefaultJourney returns the built-in journey note.
func DefaultJourney() string {
	return `我其实还有好多事想要做——
我想定制两条项链
正面刻上我们的名字缩写，反面刻上二维码入口
我想这个网页最终一定会因为更新了太多东西而卡顿，
买了一个云空间，还思考了很多很多对策
但终究，还没等实现就要拿出来了……

坐在楼下长椅上发呆的时候
坐在剧场里欢笑的时候
坐在家里沙发上聊天的时候
我无数次想牵你的手又忍住了
写到一半的时候
我竟然想着“要是当时牵一下就好了”
我不想思考这种事
我依然期待着，也相信着，我们是会有未来的

我无意用完全是我自发的努力来感动你
也未曾想过卖惨来博取你的同情
更不希望让这一切变成你的压力与负担
但我真的慌了，所以我最终还是做了类似的事
抱歉，但依然请你相信我
我只是希望在你做决定之前
让你触摸一下我的心脏
看啊
即使在寒风中
它好像也在微微发烫`
}

// DefaultAnniversaries returns the two protected default milestones. The
// "together" date starts empty; it is filled in when the confession is
// accepted, never by hand.
func DefaultAnniversaries() []AnniversaryItem {
	return []AnniversaryItem{
		{ID: AnniversaryMeetID, Name: "我们相识", Date: "2025-10-11", Icon: IconMeet, IsDefault: true, Priority: 1},
		{ID: AnniversaryTogetherID, Name: "我们在一起", Date: "", Icon: IconHeart, IsDefault: true, Priority: 0},
	}
}
