package i18n

var messages = map[string]map[string]string{
	English: {
		"appName":           "Track",
		"home":              "Home",
		"settings":          "Settings",
		"add":               "Add",
		"search":            "Search",
		"all":               "All",
		"active":            "Active",
		"retired":           "Retired",
		"sold":              "Sold",
		"uncategorized":     "Uncategorized",
		"addTime":           "Add Time",
		"purchaseDate":      "Purchase Date",
		"price":             "Price",
		"dailyCost":         "Daily Cost",
		"usageDays":         "Usage Days",
		"totalAssets":       "Total Assets",
		"days":              "days",
		"perDay":            "/day",
		"used":              "Used",
		"itemName":          "Item Name",
		"category":          "Category",
		"tags":              "Tags",
		"status":            "Status",
		"soldPrice":         "Sold Price",
		"notes":             "Notes",
		"photo":             "Photo",
		"save":              "Save",
		"delete":            "Delete",
		"cancel":            "Cancel",
		"deleteConfirm":     "Are you sure you want to delete this item?",
		"addSuccess":        "Item added successfully!",
		"editSuccess":       "Item updated successfully!",
		"deleteSuccess":     "Item deleted",
		"emptyState":        "No items yet",
		"emptyHint":         "Use the Add button to add your first item",
		"dataManagement":    "Data Management",
		"exportData":        "Export Data",
		"importData":        "Import Data",
		"language":          "Language",
		"currency":          "Currency",
		"noData":            "No data to export",
		"importSuccess":     "Import successful!",
		"importSummary":     "Imported %d items, %d rows skipped",
		"importError":       "Import failed: Invalid file format",
		"importNoValid":     "No valid data to import",
		"searchPlaceholder": "Search...",
		"noResults":         "No items found",
		"enterItemName":     "Enter item name",
		"enterPrice":        "Enter price",
		"enterCategory":     "e.g., Electronics",
		"enterTags":         "Separate tags with commas",
		"enterNotes":        "Notes...",
		"assetOverview":     "Asset Overview",
		"statistics":        "Statistics",
		"totalItems":        "Total Items",
		"profitLoss":        "Profit/Loss",
		"averageUsage":      "Average Usage",
		"mostExpensive":     "Most Expensive",
		"byCategory":        "Spending by Category",
		"grid":              "Grid",
		"list":              "List",
		"sort":              "Sort",
		"items":             "Items",
		"count":             "Count",
		"total":             "Total",

		"ErrNameRequired":         "Please enter item name",
		"ErrPurchaseDateRequired": "Please select purchase date",
		"ErrPurchaseDateInFuture": "Purchase date cannot be in the future",
		"ErrInvalidPrice":         "Please enter valid price",
		"ErrInvalidSoldPrice":     "Sold price cannot be negative",
		"ErrInvalidStatus":        "Invalid status",
		"settingsSaved":           "Settings saved",
	},
	Chinese: {
		"appName":           "Track",
		"home":              "首页",
		"settings":          "设置",
		"add":               "添加",
		"search":            "搜索",
		"all":               "全部",
		"active":            "服役中",
		"retired":           "已退役",
		"sold":              "已卖出",
		"uncategorized":     "未分类",
		"addTime":           "添加时间",
		"purchaseDate":      "购买日期",
		"price":             "价格",
		"dailyCost":         "日均成本",
		"usageDays":         "使用天数",
		"totalAssets":       "总资产",
		"days":              "天",
		"perDay":            "/天",
		"used":              "已使用",
		"itemName":          "物品名称",
		"category":          "类别",
		"tags":              "标签",
		"status":            "状态",
		"soldPrice":         "卖出价",
		"notes":             "备注",
		"photo":             "照片",
		"save":              "保存",
		"delete":            "删除物品",
		"cancel":            "取消",
		"deleteConfirm":     "确定要删除这个物品吗？",
		"addSuccess":        "物品添加成功！",
		"editSuccess":       "物品修改成功！",
		"deleteSuccess":     "物品已删除",
		"emptyState":        "还没有物品",
		"emptyHint":         "点击添加按钮添加第一个物品",
		"dataManagement":    "数据管理",
		"exportData":        "导出数据",
		"importData":        "导入数据",
		"language":          "语言",
		"currency":          "货币",
		"noData":            "没有数据可以导出",
		"importSuccess":     "导入成功！",
		"importSummary":     "已导入 %d 个物品，跳过 %d 行",
		"importError":       "导入失败：文件格式错误",
		"importNoValid":     "没有有效的数据可以导入",
		"searchPlaceholder": "搜索",
		"noResults":         "没有找到相关物品",
		"enterItemName":     "请输入物品名称",
		"enterPrice":        "请输入物品价格",
		"enterCategory":     "如：电子",
		"enterTags":         "多个标签用逗号分隔",
		"enterNotes":        "记录相关信息...",
		"assetOverview":     "资产总览",
		"statistics":        "统计",
		"totalItems":        "物品总数",
		"profitLoss":        "盈亏",
		"averageUsage":      "平均使用",
		"mostExpensive":     "最贵物品",
		"byCategory":        "分类支出",
		"grid":              "网格",
		"list":              "列表",
		"sort":              "排序",
		"items":             "物品",
		"count":             "数量",
		"total":             "合计",

		"ErrNameRequired":         "请输入物品名称",
		"ErrPurchaseDateRequired": "请选择购买日期",
		"ErrPurchaseDateInFuture": "购买日期不能晚于今天",
		"ErrInvalidPrice":         "请输入有效的价格",
		"ErrInvalidSoldPrice":     "卖出价不能为负数",
		"ErrInvalidStatus":        "状态无效",
		"settingsSaved":           "设置已保存",
	},
}
